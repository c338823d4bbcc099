package db

import (
	"context"
	"errors"

	"github.com/omnistake/vault-adapter-service/internal/db/model"
	"github.com/omnistake/vault-adapter-service/internal/types"
	"github.com/omnistake/vault-adapter-service/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveWithdrawRequest schedules a withdrawal for the depositor by drawing the
// amount down from their executed unstake request and recording a withdraw
// request, atomically. The unstake request is removed once fully drained. An
// existing withdraw request is overwritten, the last write wins.
func (db *Database) SaveWithdrawRequest(
	ctx context.Context, depositorAddress string, amount uint64, timestamp int64,
) error {
	unstakeClient := db.Client.Database(db.DbName).Collection(model.UnstakeRequestCollection)
	withdrawClient := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		unstakeFilter := bson.M{
			"_id":    depositorAddress,
			"state":  bson.M{"$in": utils.QualifiedStatesToScheduleWithdraw()},
			"amount": bson.M{"$gte": amount},
		}
		unstakeUpdate := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
		result, err := unstakeClient.UpdateOne(sessCtx, unstakeFilter, unstakeUpdate)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     depositorAddress,
				Message: "no executed unstake request found with sufficient amount",
			}
		}

		// Drop the unstake request once fully drained.
		drainedFilter := bson.M{"_id": depositorAddress, "amount": 0}
		if _, err := unstakeClient.DeleteOne(sessCtx, drainedFilter); err != nil {
			return nil, err
		}

		document := model.WithdrawRequestDocument{
			DepositorAddress: depositorAddress,
			Amount:           amount,
			Timestamp:        timestamp,
			State:            types.WithdrawScheduled,
		}
		opts := options.Replace().SetUpsert(true)
		if _, err := withdrawClient.ReplaceOne(
			sessCtx, bson.M{"_id": depositorAddress}, document, opts,
		); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, err := db.txWithRetries(ctx, transactionWork)
	return err
}

func (db *Database) FindWithdrawRequest(
	ctx context.Context, depositorAddress string,
) (*model.WithdrawRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)
	filter := bson.M{"_id": depositorAddress}
	var request model.WithdrawRequestDocument
	err := client.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     depositorAddress,
				Message: "withdraw request not found",
			}
		}
		return nil, err
	}
	return &request, nil
}

// DeleteWithdrawRequest removes the depositor's withdraw request if it still
// carries the given amount and is in one of the eligible states, the same
// compare-and-swap guard as DeleteUnstakeRequest. It returns a NotFoundError
// when the guard misses.
func (db *Database) DeleteWithdrawRequest(
	ctx context.Context, depositorAddress string, amount uint64, eligiblePreviousStates []types.WithdrawState,
) error {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)
	filter := bson.M{"_id": depositorAddress, "amount": amount, "state": bson.M{"$in": eligiblePreviousStates}}
	result, err := client.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     depositorAddress,
			Message: "withdraw request not found or not in eligible state to cancel",
		}
	}
	return nil
}

// ReduceWithdrawRequest draws amount down from the depositor's withdraw
// request, removing it once it reaches zero. It returns a NotFoundError if no
// request exists in an eligible state with sufficient amount.
func (db *Database) ReduceWithdrawRequest(
	ctx context.Context, depositorAddress string, amount uint64, eligibleStates []types.WithdrawState,
) error {
	withdrawClient := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"_id":    depositorAddress,
			"state":  bson.M{"$in": eligibleStates},
			"amount": bson.M{"$gte": amount},
		}
		update := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
		result, err := withdrawClient.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     depositorAddress,
				Message: "no withdraw request found with sufficient amount",
			}
		}

		drainedFilter := bson.M{"_id": depositorAddress, "amount": 0}
		if _, err := withdrawClient.DeleteOne(sessCtx, drainedFilter); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, err := db.txWithRetries(ctx, transactionWork)
	return err
}
