package handlers

import (
	"os"
	"testing"

	"clicknova_admin/internal/adapter/http/validation"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
