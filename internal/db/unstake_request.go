package db

import (
	"context"
	"errors"

	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveUnstakeRequest records a scheduled unstake request for the depositor.
// An existing request is overwritten in place, the last write wins.
func (db *Database) SaveUnstakeRequest(
	ctx context.Context, depositorAddress string, amount uint64, timestamp int64,
) error {
	client := db.Client.Database(db.DbName).Collection(model.UnstakeRequestCollection)
	document := model.UnstakeRequestDocument{
		DepositorAddress: depositorAddress,
		Amount:           amount,
		Timestamp:        timestamp,
		State:            types.UnstakeScheduled,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := client.ReplaceOne(ctx, bson.M{"_id": depositorAddress}, document, opts)
	if err != nil {
		return err
	}
	return nil
}

func (db *Database) FindUnstakeRequest(
	ctx context.Context, depositorAddress string,
) (*model.UnstakeRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnstakeRequestCollection)
	filter := bson.M{"_id": depositorAddress}
	var request model.UnstakeRequestDocument
	err := client.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     depositorAddress,
				Message: "unstake request not found",
			}
		}
		return nil, err
	}
	return &request, nil
}

// TransitionUnstakeRequestToExecuted marks the depositor's unstake request as
// executed. It returns a NotFoundError if the request is missing or not in an
// eligible state to transition.
func (db *Database) TransitionUnstakeRequestToExecuted(
	ctx context.Context, depositorAddress string, eligiblePreviousStates []types.UnstakeState,
) error {
	client := db.Client.Database(db.DbName).Collection(model.UnstakeRequestCollection)
	filter := bson.M{"_id": depositorAddress, "state": bson.M{"$in": eligiblePreviousStates}}
	update := bson.M{"$set": bson.M{"state": types.UnstakeExecuted}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     depositorAddress,
			Message: "unstake request not found or not in eligible state to transition",
		}
	}
	return nil
}

// DeleteUnstakeRequest removes the depositor's unstake request if it still
// carries the given amount and is in one of the eligible states. The amount
// guard makes the delete a compare-and-swap against concurrent overwrites.
// It returns a NotFoundError when the guard misses.
func (db *Database) DeleteUnstakeRequest(
	ctx context.Context, depositorAddress string, amount uint64, eligiblePreviousStates []types.UnstakeState,
) error {
	client := db.Client.Database(db.DbName).Collection(model.UnstakeRequestCollection)
	filter := bson.M{"_id": depositorAddress, "amount": amount, "state": bson.M{"$in": eligiblePreviousStates}}
	result, err := client.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     depositorAddress,
			Message: "unstake request not found or not in eligible state to cancel",
		}
	}
	return nil
}
