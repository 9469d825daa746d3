package db

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoDatabase *mongo.Database

// ConnectMongo establishes a connection to MongoDB. The archive is optional:
// when uri is empty the handle stays nil and callers skip archiving.
func ConnectMongo(uri string) {
	if uri == "" {
		log.Println("MONGO_URI not set, raw payload archive disabled")
		return
	}

	ctx := context.Background()

	opts := options.Client().ApplyURI(uri)
	mongoClient, err := mongo.Connect(ctx, opts)

	if err != nil {
		println("mongo.Connect failed")
		fmt.Println(err)

		return
	}

	mongoDatabase = mongoClient.Database("creativable")
}

// GetMongoDB returns the MongoDB database
func GetMongoDB() *mongo.Database {
	return mongoDatabase
}
