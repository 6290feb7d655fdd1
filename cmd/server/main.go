package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/quizforge/quizforge/internal/container"
	"github.com/quizforge/quizforge/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on process environment")
	}

	ctx := context.Background()
	c, err := container.New(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize application")
	}

	handler := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		CourseHandler:  c.CourseContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		AIQuizHandler:  c.AIQuizContainer.Handler,
		AdminHandler:   c.AdminContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		logrus.Infof("server listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("forced shutdown")
	}
	logrus.Info("server exited")
}
