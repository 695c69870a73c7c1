package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"projecthub/internal/services"
)

func main() {
	channel := flag.String("channel", "", "Target channel (e.g. project-updates or @alice)")
	msg := flag.String("msg", "Test message from Notifier", "Message body")
	flag.Parse()

	// Load envs
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found")
	}

	notifier := services.NewNotifier()

	log.Printf("Sending message to %q: %s", *channel, *msg)

	if err := notifier.SendMessage(*channel, *msg); err != nil {
		log.Fatalf("Failed to send message: %v", err)
	}

	log.Println("Message sent successfully!")
}
