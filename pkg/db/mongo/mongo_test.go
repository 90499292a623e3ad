package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercisetracker/pkg/db/mongo"
)

func TestNew_InvalidURI(t *testing.T) {
	database, err := mongo.New(context.Background(), &mongo.Config{
		URI:            "not-a-mongo-uri",
		Database:       "tracker",
		ConnectTimeout: 100 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), mongo.ErrConnect)
}

func TestNew_Unreachable(t *testing.T) {
	database, err := mongo.New(context.Background(), &mongo.Config{
		URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
		Database:       "tracker",
		ConnectTimeout: 300 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), mongo.ErrPing)
}
