package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/models"
)

func TestRoomCreateListsMissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testDispatcher(db))

	_, err := svc.Create(context.Background(), CreateRoomInput{Name: "Suite 1"})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "capacity")
	assert.Contains(t, err.Error(), "owner_id")
	assert.NotContains(t, err.Error(), "name,")

	var count int64
	db.Model(&models.Room{}).Count(&count)
	assert.Zero(t, count)
}

func TestRoomCreateUnknownOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testDispatcher(db))

	_, err := svc.Create(context.Background(), CreateRoomInput{
		Name:     "Suite 1",
		Type:     "Suite",
		Price:    floatPtr(300),
		Capacity: intPtr(2),
		OwnerID:  uintPtr(42),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	var count int64
	db.Model(&models.Room{}).Count(&count)
	assert.Zero(t, count)
}

func TestRoomCreateDefaultsAvailable(t *testing.T) {
	db := setupTestDB(t)
	dispatcher := testDispatcher(db)
	owners := NewOwnerService(db, dispatcher)
	rooms := NewRoomService(db, dispatcher)
	ctx := context.Background()

	owner, err := owners.Create(ctx, CreateOwnerInput{Name: "Bob"})
	require.NoError(t, err)

	room, err := rooms.Create(ctx, CreateRoomInput{
		Name:     "101",
		Type:     "Single",
		Price:    floatPtr(80),
		Capacity: intPtr(1),
		OwnerID:  uintPtr(owner.ID),
	})
	require.NoError(t, err)
	assert.True(t, room.Available)

	room, err = rooms.Create(ctx, CreateRoomInput{
		Name:      "102",
		Type:      "Single",
		Price:     floatPtr(80),
		Capacity:  intPtr(1),
		OwnerID:   uintPtr(owner.ID),
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, room.Available)
}

func TestRoomUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	dispatcher := testDispatcher(db)
	owners := NewOwnerService(db, dispatcher)
	rooms := NewRoomService(db, dispatcher)
	ctx := context.Background()

	owner, err := owners.Create(ctx, CreateOwnerInput{Name: "Bob"})
	require.NoError(t, err)

	room, err := rooms.Create(ctx, CreateRoomInput{
		Name:     "Suite 1",
		Type:     "Suite",
		Price:    floatPtr(300),
		Capacity: intPtr(2),
		OwnerID:  uintPtr(owner.ID),
	})
	require.NoError(t, err)

	updated, err := rooms.Update(ctx, room.ID, UpdateRoomInput{
		Price: floatPtr(99),
	})
	require.NoError(t, err)

	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, "Suite 1", updated.Name)
	assert.Equal(t, "Suite", updated.Type)
	assert.Equal(t, 2, updated.Capacity)
	require.NotNil(t, updated.OwnerID)
	assert.Equal(t, owner.ID, *updated.OwnerID)

	_, err = rooms.Update(ctx, 9999, UpdateRoomInput{})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// Full flow: owner, room, reservation, then the room delete is refused
// and the error names the blocking reservation.
func TestRoomDeleteBlockedByReservation(t *testing.T) {
	db := setupTestDB(t)
	dispatcher := testDispatcher(db)
	owners := NewOwnerService(db, dispatcher)
	clients := NewClientService(db, dispatcher)
	rooms := NewRoomService(db, dispatcher)
	reservations := NewReservationService(db, dispatcher)
	ctx := context.Background()

	owner, err := owners.Create(ctx, CreateOwnerInput{Name: "Bob"})
	require.NoError(t, err)

	client := createTestClient(t, clients, "guest@x.com")

	room, err := rooms.Create(ctx, CreateRoomInput{
		Name:     "Suite 1",
		Type:     "Suite",
		Price:    floatPtr(300),
		Capacity: intPtr(2),
		OwnerID:  uintPtr(owner.ID),
	})
	require.NoError(t, err)

	reservation, err := reservations.Create(ctx, CreateReservationInput{
		CheckIn:        "2025-01-01",
		CheckOut:       "2025-01-05",
		RoomID:         uintPtr(room.ID),
		ClientID:       uintPtr(client.ID),
		NumberOfPeople: intPtr(2),
	})
	require.NoError(t, err)

	err = rooms.Delete(ctx, room.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	be, _ := httperr.AsBusiness(err)
	assert.Contains(t, be.Message, fmt.Sprintf("(ID %d)", reservation.ID))

	var roomCount, reservationCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	db.Model(&models.Reservation{}).Count(&reservationCount)
	assert.EqualValues(t, 1, roomCount)
	assert.EqualValues(t, 1, reservationCount)

	require.NoError(t, reservations.Delete(ctx, reservation.ID))
	require.NoError(t, rooms.Delete(ctx, room.ID))

	db.Model(&models.Room{}).Count(&roomCount)
	assert.Zero(t, roomCount)
}

func TestRoomDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testDispatcher(db))

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
