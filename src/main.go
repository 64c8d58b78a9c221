package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "party-meeting-backend/docs"
	"party-meeting-backend/src/database"
	"party-meeting-backend/src/jobs"
	"party-meeting-backend/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        Party Meeting Backend API
// @version      1.0
// @description  Meeting, membership and attendance statistics API for university party branches.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and the job queue are optional: without them the API still serves,
	// only reminders, email dispatch and login rate limiting are disabled.
	database.InitRedis()
	database.InitAsynq()

	// RUN_WORKER=true turns this process into the asynq worker instead of the API.
	if os.Getenv("RUN_WORKER") == "true" {
		jobs.StartWorker()
		return
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // must stay false with "*"
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Archived meeting files are served straight from the upload directory.
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	app.Static("/files", uploadDir)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
