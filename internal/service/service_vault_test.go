package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/mock"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (service.VaultService, *mock.MockCredentialRepository, *mock.MockNoteRepository) {
	t.Helper()
	creds := mock.NewMockCredentialRepository(ctrl)
	notes := mock.NewMockNoteRepository(ctrl)
	svc := service.NewVaultService(creds, notes, logger.Nop())
	return svc, creds, notes
}

func validCredentialIn() models.CredentialIn {
	return models.CredentialIn{
		DomainName: "example.com",
		Username:   "alice",
		Password:   []byte{0xde, 0xad},
		Nonce:      []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}
}

func validNoteIn() models.NoteIn {
	return models.NoteIn{
		Title:        []byte{0x01},
		TitleNonce:   []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Content:      []byte{0x02},
		ContentNonce: []byte{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	}
}

func TestVaultService_CreateCredential_AssignsIDAndOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, creds, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	in := validCredentialIn()

	creds.EXPECT().
		CreateCredential(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Credential) (models.Credential, error) {
			assert.NotEmpty(t, rec.PasswordID)
			assert.Equal(t, "u-1", rec.UserID)
			assert.Equal(t, in.Password, rec.Password)
			assert.Equal(t, in.Nonce, rec.Nonce)
			return rec, nil
		})

	created, err := svc.CreateCredential(ctx, "u-1", in)
	require.NoError(t, err)
	assert.NotEmpty(t, created.PasswordID)
}

func TestVaultService_CreateCredential_RejectsMissingNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	in := validCredentialIn()
	in.Nonce = nil

	_, err := svc.CreateCredential(context.Background(), "u-1", in)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestVaultService_GetCredential_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, creds, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	creds.EXPECT().
		GetCredential(ctx, "u-1", "missing").
		Return(models.Credential{}, store.ErrRecordNotFound)

	_, err := svc.GetCredential(ctx, "u-1", "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestVaultService_UpdateCredential_ScopesOnOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, creds, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	in := validCredentialIn()

	creds.EXPECT().
		UpdateCredential(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Credential) (models.Credential, error) {
			// Another user's id must reach the repository as the scope.
			assert.Equal(t, "u-1", rec.UserID)
			assert.Equal(t, "p-1", rec.PasswordID)
			return rec, nil
		})

	_, err := svc.UpdateCredential(ctx, "u-1", "p-1", in)
	require.NoError(t, err)
}

func TestVaultService_DeleteCredential_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, creds, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	creds.EXPECT().
		DeleteCredential(ctx, "u-1", "p-other").
		Return(store.ErrRecordNotFound)

	err := svc.DeleteCredential(ctx, "u-1", "p-other")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestVaultService_CreateNote_AssignsIDAndOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, notes := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	in := validNoteIn()

	notes.EXPECT().
		CreateNote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Note) (models.Note, error) {
			assert.NotEmpty(t, rec.NoteID)
			assert.Equal(t, "u-1", rec.UserID)
			assert.Equal(t, in.Title, rec.Title)
			assert.Equal(t, in.ContentNonce, rec.ContentNonce)
			return rec, nil
		})

	created, err := svc.CreateNote(ctx, "u-1", in)
	require.NoError(t, err)
	assert.NotEmpty(t, created.NoteID)
}

func TestVaultService_CreateNote_RejectsPartialPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	in := validNoteIn()
	in.ContentNonce = nil

	_, err := svc.CreateNote(context.Background(), "u-1", in)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestVaultService_ListNotes_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, notes := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	notes.EXPECT().
		ListNotes(ctx, "u-1").
		Return([]models.Note{{NoteID: "n-1"}, {NoteID: "n-2"}}, nil)

	list, err := svc.ListNotes(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-1", list[0].NoteID)
}
