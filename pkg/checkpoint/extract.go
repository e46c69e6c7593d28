package checkpoint

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"

	"github.com/hymnly133/prizm/pkg/models"
)

type toolArgs struct {
	Path  string `json:"path"`
	From  string `json:"from"`
	To    string `json:"to"`
	Title string `json:"title"`
	ID    string `json:"id"`
}

// ExtractFileChanges derives a checkpoint's file-change list from the tool
// parts of an assistant message. Errored parts and parts with unparseable
// arguments are skipped; duplicate paths keep the first occurrence.
func ExtractFileChanges(msg *models.AgentMessage) []models.FileChange {
	var changes []models.FileChange
	seen := make(map[string]bool)

	add := func(c models.FileChange) {
		if seen[c.Path] {
			return
		}
		seen[c.Path] = true
		changes = append(changes, c)
	}

	for _, part := range msg.Parts {
		if part.Type != models.PartTool || part.IsError {
			continue
		}
		args, ok := parseArgs(part.Arguments)
		if !ok {
			continue
		}
		switch part.ToolName {
		case "prizm_file_write":
			if args.Path != "" {
				add(models.FileChange{Path: args.Path, Action: models.FileCreated})
			}
		case "prizm_file_move":
			if args.To != "" {
				add(models.FileChange{Path: args.To, Action: models.FileMoved, FromPath: args.From})
			}
		case "prizm_file_delete":
			if args.Path != "" {
				add(models.FileChange{Path: args.Path, Action: models.FileDeleted})
			}
		case "prizm_create_document":
			if args.Title != "" {
				add(models.FileChange{Path: "[doc] " + args.Title, Action: models.FileCreated})
			}
		case "prizm_update_document":
			if args.ID != "" {
				add(models.FileChange{Path: "[doc] " + args.ID, Action: models.FileModified})
			}
		case "prizm_delete_document":
			if args.ID != "" {
				add(models.FileChange{Path: "[doc] " + args.ID, Action: models.FileDeleted})
			}
		}
	}
	return changes
}

// parseArgs decodes tool-call arguments, repairing malformed JSON first.
// Models occasionally emit truncated or single-quoted JSON.
func parseArgs(raw string) (toolArgs, bool) {
	var args toolArgs
	if raw == "" {
		return args, false
	}
	if err := json.Unmarshal([]byte(raw), &args); err == nil {
		return args, true
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return args, false
	}
	if err := json.Unmarshal([]byte(repaired), &args); err != nil {
		return args, false
	}
	return args, true
}
