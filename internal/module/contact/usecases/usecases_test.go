package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"wirpackens-service/internal/module/contact/mocks"
	"wirpackens-service/internal/module/contact/models/entity"
	"wirpackens-service/internal/module/contact/models/request"
	"wirpackens-service/internal/module/contact/usecases"
	"wirpackens-service/internal/pkg/errors"
	log_internal "wirpackens-service/internal/pkg/log"
	"wirpackens-service/internal/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateContact(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	testCases := []struct {
		name          string
		payload       request.Contact
		mailDelivered bool
		repoErr       error
	}{
		{
			name:          "stored and mailed",
			payload:       request.Contact{FirstName: "Erika", LastName: "Mustermann", Email: "erika@example.com", Service: "moving"},
			mailDelivered: true,
		},
		{
			name:          "mail failure still succeeds",
			payload:       request.Contact{FirstName: "Max", LastName: "M", Email: "max@example.com"},
			mailDelivered: false,
		},
		{
			name:    "persistence failure",
			payload: request.Contact{FirstName: "Max", LastName: "M", Email: "max@example.com"},
			repoErr: errors.InternalServerError("error insert contact"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repoMock := new(mocks.Repositories)
			notifierMock := new(mocks.Notifier)
			uc := usecases.New(repoMock, notifierMock, log_internal.Nop())

			if tc.repoErr != nil {
				repoMock.On("InsertContact", ctx, mock.Anything).Return(entity.Contact{}, tc.repoErr).Once()
			} else {
				repoMock.On("InsertContact", ctx, mock.MatchedBy(func(c entity.Contact) bool {
					return c.Email == tc.payload.Email && !c.Phone.Valid
				})).Return(func(_ context.Context, c entity.Contact) (entity.Contact, error) {
					c.ID = 1
					c.CreatedAt = now
					return c, nil
				}).Once()
				notifierMock.On("NotifyContact", ctx, mock.AnythingOfType("mailer.ContactMail")).Return(tc.mailDelivered).Once()
			}

			resp, err := uc.CreateContact(ctx, &tc.payload)
			if tc.repoErr != nil {
				assert.Equal(t, tc.repoErr, err)
				notifierMock.AssertNotCalled(t, "NotifyContact", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.mailDelivered, resp.EmailSent)
			assert.Equal(t, int64(1), resp.Contact.ID)
			assert.Nil(t, resp.Contact.Phone)
			repoMock.AssertExpectations(t)
			notifierMock.AssertExpectations(t)
		})
	}
}

func TestCreateContactMailsServiceLabel(t *testing.T) {
	ctx := context.Background()
	repoMock := new(mocks.Repositories)
	notifierMock := new(mocks.Notifier)
	uc := usecases.New(repoMock, notifierMock, log_internal.Nop())

	repoMock.On("InsertContact", ctx, mock.Anything).Return(entity.Contact{
		ID: 3, FirstName: "A", LastName: "B", Email: "a@b.de",
		Service: sql.NullString{String: "messie", Valid: true},
	}, nil).Once()
	notifierMock.On("NotifyContact", ctx, mailer.ContactMail{
		FirstName: "A", LastName: "B", Email: "a@b.de", ServiceLabel: "Messiewohnung",
	}).Return(true).Once()

	_, err := uc.CreateContact(ctx, &request.Contact{FirstName: "A", LastName: "B", Email: "a@b.de", Service: "messie"})
	require.NoError(t, err)
	notifierMock.AssertExpectations(t)
}

func TestListContacts(t *testing.T) {
	ctx := context.Background()
	repoMock := new(mocks.Repositories)
	uc := usecases.New(repoMock, new(mocks.Notifier), log_internal.Nop())

	repoMock.On("ListContacts", ctx).Return([]entity.Contact{
		{ID: 2, Message: sql.NullString{String: "hi", Valid: true}},
		{ID: 1},
	}, nil).Once()

	contacts, err := uc.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "hi", *contacts[0].Message)
	assert.Nil(t, contacts[1].Message)
}
