package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.Client(), server.URL), server
}

func TestProcessAction(t *testing.T) {
	var gotBody actionRequest
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/process_game_action", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		hp := 10
		_ = json.NewEncoder(w).Encode(scene.Payload{
			Message:      "You walk north.",
			LocationName: "Whispering Woods",
			PlayerHP:     &hp,
		})
	}))
	defer server.Close()

	payload, err := client.ProcessAction("go north")
	require.NoError(t, err)
	assert.Equal(t, "go north", gotBody.Action)
	assert.Equal(t, "You walk north.", payload.Message)
	assert.Equal(t, "Whispering Woods", payload.LocationName)
	require.NotNil(t, payload.PlayerHP)
	assert.Equal(t, 10, *payload.PlayerHP)
}

func TestProcessActionServerError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "unknown action"})
	}))
	defer server.Close()

	_, err := client.ProcessAction("warble")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Contains(t, err.Error(), "unknown action")
	assert.False(t, IsConnectivityError(err), "server rejection is not a connectivity failure")
}

func TestProcessActionConnectivityError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all further connections

	_, err := client.ProcessAction("go north")
	require.Error(t, err)
	assert.True(t, IsConnectivityError(err))
}

func TestNonJSONErrorBody(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	_, err := client.ProcessAction("go north")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestGetCharacters(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/get_characters", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]scene.CharacterSummary{
			{DisplayName: "Mira", Level: 3, Species: "Elf", Class: "Ranger"},
		})
	}))
	defer server.Close()

	characters, err := client.GetCharacters()
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Mira", characters[0].DisplayName)
}

func TestCreateCharacter(t *testing.T) {
	var gotBody CreateCharacterRequest
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/create_character", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(scene.Payload{LocationName: "Starting Glade"})
	}))
	defer server.Close()

	payload, err := client.CreateCharacter(CreateCharacterRequest{
		SpeciesID:    "elf",
		ClassID:      "ranger",
		PlayerName:   "Mira",
		PlayerGender: "Female",
	})
	require.NoError(t, err)
	assert.Equal(t, "elf", gotBody.SpeciesID)
	assert.Equal(t, "Mira", gotBody.PlayerName)
	assert.Equal(t, "Starting Glade", payload.LocationName)
}

func TestLoadCharacterSendsName(t *testing.T) {
	var gotBody characterNameRequest
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/load_character", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(scene.Payload{PlayerName: "Mira"})
	}))
	defer server.Close()

	payload, err := client.LoadCharacter("Mira")
	require.NoError(t, err)
	assert.Equal(t, "Mira", gotBody.CharacterName)
	assert.Equal(t, "Mira", payload.PlayerName)
}

func TestDeleteCharacter(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/delete_character", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	assert.NoError(t, client.DeleteCharacter("Mira"))
}

func TestGetWorldMap(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/get_world_map", r.URL.Path)
		_ = json.NewEncoder(w).Encode(scene.WorldMap{
			Locations: []scene.MapLocation{
				{ID: "glade", Name: "Starting Glade", X: 1, Y: 1, Visited: true},
			},
			CurrentLocationID: "glade",
		})
	}))
	defer server.Close()

	wm, err := client.GetWorldMap()
	require.NoError(t, err)
	assert.Equal(t, "glade", wm.CurrentLocationID)
	require.Len(t, wm.Locations, 1)
}

func TestSaveGameState(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/save_game_state", r.URL.Path)
		_ = json.NewEncoder(w).Encode(saveResponse{Message: "Game saved in Aldora."})
	}))
	defer server.Close()

	msg, err := client.SaveGameState()
	require.NoError(t, err)
	assert.Equal(t, "Game saved in Aldora.", msg)
}
