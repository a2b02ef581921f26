package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Abort encerra a cadeia de middlewares com o erro padrão.
func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{Code: code, Message: messageFor(code)})
}

// Respond escreve o erro de negócio com o status correspondente.
// Qualquer outro erro vira 500 sem expor detalhes internos.
func Respond(c *gin.Context, err error) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, "internal_error", messageFor("internal_error"))
		return
	}

	code := err.Error()
	switch kind {
	case KindNotFound:
		NotFound(c, code, messageFor(code))
	case KindConflict:
		Conflict(c, code, messageFor(code))
	default:
		BadRequest(c, code, messageFor(code))
	}
}

var messages = map[string]string{
	"invalid_body":                "Dados inválidos.",
	"invalid_date":                "Data inválida.",
	"date_in_past":                "A data da reserva já passou.",
	"invalid_time":                "Horário inválido. Use breakfast, lunch ou dinner.",
	"invalid_status":              "Estado de reserva inválido.",
	"invalid_initial_status":      "Uma reserva só pode ser criada como pending ou confirmed.",
	"invalid_guests":              "Número de convidados inválido.",
	"invalid_capacity":            "Capacidade inválida.",
	"invalid_id":                  "Identificador inválido.",
	"invalid_filter":              "Filtro inválido.",
	"user_not_found":              "O usuário solicitado não existe.",
	"reservation_not_found":       "A reserva solicitada não existe.",
	"table_not_found":             "A mesa solicitada não existe.",
	"insufficient_capacity":       "O número de convidados excede a nossa capacidade.",
	"tables_already_reserved":     "As mesas já estão reservadas.",
	"invalid_transition":          "Transição de estado não permitida.",
	"table_number_exists":         "Já existe uma mesa com esse número.",
	"table_has_reservations":      "A mesa possui reservas futuras.",
	"capacity_below_reservations": "A nova capacidade não comporta reservas já feitas para esta mesa.",
	"email_already_exists":        "Já existe um usuário com esse e-mail.",
	"invalid_credentials":         "E-mail ou senha incorretos.",
	"missing_token":               "Token de acesso ausente.",
	"invalid_token":               "Token de acesso inválido.",
	"forbidden":                   "Acesso restrito a administradores.",
	"too_many_requests":           "Muitas requisições, tente novamente em instantes.",
	"internal_error":              "Erro interno.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
