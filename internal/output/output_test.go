package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() models.MenuProject {
	return models.MenuProject{
		ID:         "p1",
		Name:       "Lunch",
		Restaurant: models.RestaurantInfo{Name: "Cafe"},
		Categories: []models.MenuCategory{
			{ID: "c1", Name: "Mains", Items: []models.MenuItem{{ID: "i1", Name: "Burger"}, {ID: "i2", Name: "Pasta"}}},
			{ID: "c2", Name: "Drinks", Items: []models.MenuItem{}},
		},
	}
}

func TestNewProjectEvent(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	e := NewProjectEvent(EventPublished, sampleProject(), at)

	assert.Equal(t, EventPublished, e.Kind)
	assert.Equal(t, "p1", e.ProjectID)
	assert.Equal(t, "Cafe", e.Restaurant)
	assert.Equal(t, 2, e.Categories)
	assert.Equal(t, 2, e.Items)
	assert.Equal(t, at.Unix(), e.Timestamp)
	assert.Nil(t, e.Project)

	withSnapshot := e.WithSnapshot(sampleProject())
	require.NotNil(t, withSnapshot.Project)
	assert.Equal(t, "Lunch", withSnapshot.Project.Name)
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(&buf)

	require.NoError(t, Send(out, "menus", NewProjectEvent(EventExported, sampleProject(), time.Unix(0, 0))))
	require.NoError(t, out.Close())

	assert.Contains(t, buf.String(), "[menus] {")
	assert.Contains(t, buf.String(), `"kind":"menu.exported"`)
}

func TestJSONOutput_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events", "menu.jsonl")
	out, err := NewJSONOutput(path)
	require.NoError(t, err)

	require.NoError(t, out.WriteMessage("a", []byte(`{"n":1}`)))
	require.NoError(t, out.WriteMessage("b", []byte(`{"n":2}`)))
	require.NoError(t, out.Close())
	assert.Error(t, out.WriteMessage("a", []byte(`{}`)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []jsonLine
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var l jsonLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &l))
		lines = append(lines, l)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[1].Topic)
	assert.JSONEq(t, `{"n":2}`, string(lines[1].Message))
}

func TestJSONOutput_RejectsInvalidJSON(t *testing.T) {
	out, err := NewJSONOutput(filepath.Join(t.TempDir(), "e.jsonl"))
	require.NoError(t, err)
	defer out.Close()

	assert.Error(t, out.WriteMessage("a", []byte("not json")))
}

func TestKafkaOutput(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e ProjectEvent
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.ProjectID != "p1" {
			return errors.New("unexpected project id")
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	out := NewKafkaOutputWithProducer(producer)
	e := NewProjectEvent(EventPublished, sampleProject(), time.Unix(0, 0))

	require.NoError(t, Send(out, "menu_events", e))
	assert.ErrorIs(t, Send(out, "menu_events", e), sarama.ErrOutOfBrokers)
	require.NoError(t, out.Close())
	assert.Error(t, out.WriteMessage("menu_events", []byte(`{}`)))
}

func TestFromConfig(t *testing.T) {
	dst, err := FromConfig(&models.Config{})
	require.NoError(t, err)
	assert.Nil(t, dst)

	dst, err = FromConfig(&models.Config{EventFile: filepath.Join(t.TempDir(), "e.jsonl")})
	require.NoError(t, err)
	assert.IsType(t, &JSONOutput{}, dst)
	require.NoError(t, dst.Close())
}
