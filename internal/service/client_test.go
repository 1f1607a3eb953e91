package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/models"
)

func createTestClient(t *testing.T, svc *ClientService, email string) *models.Client {
	t.Helper()

	client, err := svc.Create(context.Background(), CreateClientInput{
		Name:      "Jean",
		Surname:   "Dupont",
		Address:   "12 rue des Lilas",
		Birthdate: strPtr("1990-04-02"),
		Note:      "regular guest",
		Email:     email,
		Password:  "secret",
	})
	require.NoError(t, err)
	return client
}

func TestClientCreateRequiresCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, testDispatcher(db))

	_, err := svc.Create(context.Background(), CreateClientInput{Name: "Jean"})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	var clientCount, userCount int64
	db.Model(&models.Client{}).Count(&clientCount)
	db.Model(&models.User{}).Count(&userCount)
	assert.Zero(t, clientCount)
	assert.Zero(t, userCount)
}

func TestClientCreateLinksUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, testDispatcher(db))

	client := createTestClient(t, svc, "jean@x.com")

	require.NotNil(t, client.User)
	assert.Equal(t, "jean@x.com", client.User.Email)
	assert.Equal(t, models.RoleClient, client.User.Role)
	require.NotNil(t, client.Birthdate)
	assert.Equal(t, "1990-04-02", client.Birthdate.Format("2006-01-02"))
}

func TestClientCreateRejectsBadBirthdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, testDispatcher(db))

	_, err := svc.Create(context.Background(), CreateClientInput{
		Email:     "jean@x.com",
		Password:  "secret",
		Birthdate: strPtr("02/04/1990"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestClientUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, testDispatcher(db))
	ctx := context.Background()

	client := createTestClient(t, svc, "jean@x.com")

	updated, err := svc.Update(ctx, client.ID, UpdateClientInput{
		Note: strPtr("VIP"),
	})
	require.NoError(t, err)

	assert.Equal(t, "VIP", updated.Note)
	assert.Equal(t, "Jean", updated.Name)
	assert.Equal(t, "Dupont", updated.Surname)
	require.NotNil(t, updated.User)
	assert.Equal(t, "jean@x.com", updated.User.Email)

	// An explicit empty string clears the field; absence does not.
	updated, err = svc.Update(ctx, client.ID, UpdateClientInput{
		Note: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Note)

	_, err = svc.Update(ctx, 9999, UpdateClientInput{})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestClientDeleteBlockedByReservation(t *testing.T) {
	db := setupTestDB(t)
	dispatcher := testDispatcher(db)
	clients := NewClientService(db, dispatcher)
	owners := NewOwnerService(db, dispatcher)
	rooms := NewRoomService(db, dispatcher)
	reservations := NewReservationService(db, dispatcher)
	ctx := context.Background()

	client := createTestClient(t, clients, "jean@x.com")

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

	reservation, err := reservations.Create(ctx, CreateReservationInput{
		CheckIn:        "2025-01-01",
		CheckOut:       "2025-01-05",
		RoomID:         uintPtr(room.ID),
		ClientID:       uintPtr(client.ID),
		NumberOfPeople: intPtr(2),
	})
	require.NoError(t, err)

	err = clients.Delete(ctx, client.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	// Nothing was removed: client, its user and the reservation survive.
	var clientCount, userCount, reservationCount int64
	db.Model(&models.Client{}).Count(&clientCount)
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Reservation{}).Count(&reservationCount)
	assert.EqualValues(t, 1, clientCount)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 1, reservationCount)

	// Once the reservation is gone the delete goes through, user included.
	require.NoError(t, reservations.Delete(ctx, reservation.ID))
	require.NoError(t, clients.Delete(ctx, client.ID))

	db.Model(&models.Client{}).Count(&clientCount)
	db.Model(&models.User{}).Count(&userCount)
	assert.Zero(t, clientCount)
	assert.Zero(t, userCount)
}
