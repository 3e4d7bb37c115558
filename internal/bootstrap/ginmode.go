package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode maps the runtime environment onto gin's mode. Anything
// other than production keeps the verbose debug output.
func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
