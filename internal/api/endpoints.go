package api

import (
	"fmt"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

// CreateCharacterRequest matches the creation endpoint's body.
type CreateCharacterRequest struct {
	SpeciesID    string `json:"species_id"`
	ClassID      string `json:"class_id"`
	PlayerName   string `json:"player_name"`
	PlayerGender string `json:"player_gender"`
}

type characterNameRequest struct {
	CharacterName string `json:"character_name"`
}

type actionRequest struct {
	Action string `json:"action"`
}

type saveResponse struct {
	Message string `json:"message"`
}

// GetCharacters lists saved characters for the selection screen.
func (c *Client) GetCharacters() ([]scene.CharacterSummary, error) {
	var characters []scene.CharacterSummary
	if err := c.get("/api/get_characters", &characters); err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// GetSpecies lists the species choices for character creation.
func (c *Client) GetSpecies() ([]scene.Option, error) {
	var options []scene.Option
	if err := c.get("/get_species", &options); err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	return options, nil
}

// GetClasses lists the class choices for character creation.
func (c *Client) GetClasses() ([]scene.Option, error) {
	var options []scene.Option
	if err := c.get("/get_classes", &options); err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return options, nil
}

// CreateCharacter submits the creation draft and returns the first scene.
func (c *Client) CreateCharacter(req CreateCharacterRequest) (*scene.Payload, error) {
	var payload scene.Payload
	if err := c.post("/api/create_character", req, &payload); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	return &payload, nil
}

// LoadCharacter loads a saved character and returns its current scene.
func (c *Client) LoadCharacter(name string) (*scene.Payload, error) {
	var payload scene.Payload
	if err := c.post("/api/load_character", characterNameRequest{CharacterName: name}, &payload); err != nil {
		return nil, fmt.Errorf("failed to load character %s: %w", name, err)
	}
	return &payload, nil
}

// ResumeSession is the lightweight restart path. It fails when the server
// lost its in-memory state; callers fall back to LoadCharacter.
func (c *Client) ResumeSession(name string) (*scene.Payload, error) {
	var payload scene.Payload
	if err := c.post("/api/resume_session", characterNameRequest{CharacterName: name}, &payload); err != nil {
		return nil, fmt.Errorf("failed to resume session for %s: %w", name, err)
	}
	return &payload, nil
}

// DeleteCharacter permanently removes a saved character.
func (c *Client) DeleteCharacter(name string) error {
	if err := c.post("/api/delete_character", characterNameRequest{CharacterName: name}, nil); err != nil {
		return fmt.Errorf("failed to delete character %s: %w", name, err)
	}
	return nil
}

// ProcessAction forwards a player intent and returns the resulting scene.
func (c *Client) ProcessAction(action string) (*scene.Payload, error) {
	var payload scene.Payload
	if err := c.post("/process_game_action", actionRequest{Action: action}, &payload); err != nil {
		return nil, fmt.Errorf("failed to process action: %w", err)
	}
	return &payload, nil
}

// GetWorldMap fetches all known locations for the world-map modal.
func (c *Client) GetWorldMap() (*scene.WorldMap, error) {
	var wm scene.WorldMap
	if err := c.get("/api/get_world_map", &wm); err != nil {
		return nil, fmt.Errorf("failed to get world map: %w", err)
	}
	return &wm, nil
}

// SaveGameState asks the server to persist the game and returns its
// message for the output log.
func (c *Client) SaveGameState() (string, error) {
	var resp saveResponse
	if err := c.post("/api/save_game_state", nil, &resp); err != nil {
		return "", fmt.Errorf("failed to save game: %w", err)
	}
	return resp.Message, nil
}
