package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"OchiqMuloqot/entity"
)

// SaveRegistration archives a registration. Upserting by _id keeps a
// retried delivery from producing two documents.
func (m *MongoDB) SaveRegistration(ctx context.Context, rec *entity.Registration) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(registrationsCollection)

	filter := bson.D{{Key: "_id", Value: rec.ID}}
	update := bson.D{{Key: "$set", Value: rec}}
	opts := options.Update().SetUpsert(true)

	_, err = collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}

	return nil
}

// ListRegistrations returns the most recent registrations, newest first.
func (m *MongoDB) ListRegistrations(ctx context.Context, limit int64) ([]entity.Registration, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(registrationsCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, m.findError(err)
	}

	var out []entity.Registration
	if err = cursor.All(ctx, &out); err != nil {
		return nil, m.findError(err)
	}

	return out, nil
}

// CountRegistrationsSince counts registrations submitted at or after
// since, for the daily digest.
func (m *MongoDB) CountRegistrationsSince(ctx context.Context, since time.Time) (int64, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(registrationsCollection)

	filter := bson.D{{Key: "submitted_at", Value: bson.D{{Key: "$gte", Value: since}}}}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return count, nil
}
