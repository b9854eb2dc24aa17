package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"astrochat/configs"
	httpAdapter "astrochat/internal/adapters/input/http"
	"astrochat/internal/adapters/output/canned"
	"astrochat/internal/adapters/output/gemini"
	"astrochat/internal/application"
	"astrochat/internal/ports/output"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapter (live generation endpoint) - only when a credential is
	// configured; running without one is a supported mode, not an error
	var upstream output.GenerationClient
	if configs.GetViper().Gemini.APIKey != "" {
		geminiClient, err := gemini.NewGeminiClientAdapter(configs.GetViper().Gemini)
		if err != nil {
			return err
		}
		upstream = geminiClient
	} else {
		logrus.Warn("No Gemini API key configured, answering from the built-in corpus")
	}
	// Output adapter (canned fallback generator)
	fallback := canned.NewCannedGeneratorAdapter(configs.GetViper().Fallback)
	// Application service (use case)
	srv := application.NewChatService(upstream, fallback)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	orbit := app.Group("/v1/api")
	{
		orbit.Post("/chat", hdl.Chat)
	}

	err := app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
