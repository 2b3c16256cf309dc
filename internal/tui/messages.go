package tui

import (
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/vault"
)

type authDoneMsg struct {
	session *service.SessionContext
	err     error
}

type syncDoneMsg struct {
	report vault.LoadReport
	err    error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
