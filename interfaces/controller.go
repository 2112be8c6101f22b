package interfaces

import "github.com/gin-gonic/gin"

type Controller interface {
	GetWords(g *gin.Context)
}
