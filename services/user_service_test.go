package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The driver connects lazily, so a database handle can be built without a
// running server.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("mongo.Connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("eyenova_test")
}

func TestNewUserServiceSharesChatLogCleanup(t *testing.T) {
	svc := NewUserService(testDatabase(t), 10)

	if svc.chatLog == nil {
		t.Fatal("user service must carry the chat log service so account deletion reuses its cleanup")
	}
	if svc.chatLog.sessions == nil || svc.chatLog.messages == nil {
		t.Error("chat log service collections are not wired")
	}
}
