package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-stats-chart/src/config"
	"log"
	"os"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	container := config.InitServiceContainer()
	defer container.Db.Close()
	defer container.PointsDb.Close()

	for _, connection := range container.StartFeed() {
		defer connection.Close()
	}

	container.StartHttpServer()
}
