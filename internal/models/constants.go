package models

// ============================================================================
// STAGE DEFAULTS
// ============================================================================

// DefaultStageTitles are the stages every new workflow starts with, in order.
var DefaultStageTitles = []string{"Backlog", "In Progress", "Done"}

// DefaultNewStageTitle is used when a stage is added without a title.
const DefaultNewStageTitle = "New Stage"

// ============================================================================
// PERSISTENCE KEYS
// ============================================================================

const (
	// WorkflowStorageKey is the key the board state is mirrored under.
	WorkflowStorageKey = "FlowMaster-Workflow"

	// AuthStorageKey is the key the authentication state is mirrored under.
	AuthStorageKey = "auth-storage"

	// AccountsStorageKey is the key registered accounts are mirrored under.
	AccountsStorageKey = "auth-accounts"
)
