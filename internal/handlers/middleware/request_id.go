package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader é o header usado para propagar o id da requisição
const RequestIDHeader = "X-Request-ID"

// RequestIDContextKey é a chave usada para armazenar o id no contexto do Gin
const RequestIDContextKey = "request_id"

// RequestID gera (ou propaga) um identificador único por requisição.
// O id é devolvido no header de resposta e fica disponível no contexto
// para correlação nos logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
