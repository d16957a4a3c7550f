package config

import (
	"log"

	"authorshaven/global"

	"github.com/go-redis/redis"
)

func initRedis() {
	if AppConfig.Redis.Addr == "" {
		log.Println("redis addr empty, skipping redis init")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     AppConfig.Redis.Addr,
		DB:       AppConfig.Redis.DB,
		Password: AppConfig.Redis.Password,
	})

	if _, err := client.Ping().Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	global.RedisDB = client
}
