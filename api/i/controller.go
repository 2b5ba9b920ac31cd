// Package i holds the interfaces the router depends on.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a versioned group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
