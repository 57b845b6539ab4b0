package tui

import (
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
)

// Data loading messages.
type bundleLoadedMsg struct {
	bundle *model.Bundle
	err    error
}

// reloadRequestMsg asks the page to refetch the application bundle.
type reloadRequestMsg struct{}
