package services

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func optionsSortBy(field string, dir int) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: dir}})
}
