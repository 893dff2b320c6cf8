package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), "://not-a-dsn")
	assert.Error(t, err)
}

func TestDB_PingNilPool(t *testing.T) {
	db := &DB{}
	assert.Error(t, db.Ping(context.Background()))
}

func TestDB_CloseNilPool(t *testing.T) {
	db := &DB{}
	assert.NoError(t, db.Close())
}
