package main

// @title Astrochat APIs
// @version 1.0
// @description Streaming chat relay for space biology research questions.

// @contact.name API Support

// @host localhost:3000
// @BasePath /
// @schemes http
import (
	protocol "astrochat/protocal"

	_ "astrochat/docs"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
