package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultPythonText is rendered by /python/ when no text is given.
const DefaultPythonText = "is cool"

// HelloHandler serves the plain-text landing routes
type HelloHandler interface {
	Index(ctx *gin.Context)
	HBNB(ctx *gin.Context)
	C(ctx *gin.Context)
	Python(ctx *gin.Context)
}

type helloHandler struct{}

// NewHelloHandler creates a new HelloHandler
func NewHelloHandler() HelloHandler {
	return &helloHandler{}
}

// Index handles GET /
func (handler *helloHandler) Index(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello HBNB!")
}

// HBNB handles GET /hbnb
func (handler *helloHandler) HBNB(ctx *gin.Context) {
	ctx.String(http.StatusOK, "HBNB")
}

// C handles GET /c/:text
func (handler *helloHandler) C(ctx *gin.Context) {
	ctx.String(http.StatusOK, "C "+underscoresToSpaces(ctx.Param("text")))
}

// Python handles GET /python/*text
func (handler *helloHandler) Python(ctx *gin.Context) {
	text := strings.TrimPrefix(ctx.Param("text"), "/")
	if text == "" {
		text = DefaultPythonText
	}
	ctx.String(http.StatusOK, "Python "+underscoresToSpaces(text))
}

func underscoresToSpaces(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
