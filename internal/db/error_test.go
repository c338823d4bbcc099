package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorTypeHelpers(t *testing.T) {
	notFound := &NotFoundError{Key: "0xabc", Message: "unstake request not found"}
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsNotFoundError(errors.New("unstake request not found")))
	assert.Equal(t, "unstake request not found", notFound.Error())

	duplicate := &DuplicateKeyError{Key: "0xabc", Message: "already exists"}
	assert.True(t, IsDuplicateKeyError(duplicate))
	assert.False(t, IsDuplicateKeyError(notFound))
}

func TestMongoCommandErrorClassification(t *testing.T) {
	writeConflict := mongo.CommandError{Code: 112, Message: "WriteConflict"}
	assert.True(t, IsWriteConflictError(writeConflict))
	assert.False(t, IsTransactionAbortedError(writeConflict))

	txAborted := mongo.CommandError{Code: 251, Message: "NoSuchTransaction"}
	assert.True(t, IsTransactionAbortedError(txAborted))
	assert.False(t, IsWriteConflictError(txAborted))

	// Wrapped command errors still classify.
	wrapped := fmt.Errorf("transaction failed: %w", writeConflict)
	assert.True(t, IsWriteConflictError(wrapped))

	assert.False(t, IsWriteConflictError(errors.New("some other failure")))
}

func TestTransientTxErrorClassification(t *testing.T) {
	assert.True(t, isTransientTxError(mongo.CommandError{Code: 112, Message: "WriteConflict"}))
	assert.True(t, isTransientTxError(mongo.CommandError{Code: 251, Message: "NoSuchTransaction"}))
	assert.False(t, isTransientTxError(errors.New("document validation failed")))
}
