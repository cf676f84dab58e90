// Package output delivers project events to a console, a JSON lines file or
// a Kafka topic.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/menucraft/internal/models"
)

const (
	EventPublished = "menu.published"
	EventExported  = "menu.exported"
)

type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// ProjectEvent is the message body for every topic. Project carries the full
// snapshot for publish events; export events only need the summary.
type ProjectEvent struct {
	Kind       string              `json:"kind"`
	ProjectID  string              `json:"projectId"`
	Name       string              `json:"name"`
	Restaurant string              `json:"restaurant"`
	Categories int                 `json:"categories"`
	Items      int                 `json:"items"`
	Format     string              `json:"format,omitempty"`
	Location   string              `json:"location,omitempty"`
	Timestamp  int64               `json:"timestamp"`
	Project    *models.MenuProject `json:"project,omitempty"`
}

func NewProjectEvent(kind string, project models.MenuProject, at time.Time) ProjectEvent {
	return ProjectEvent{
		Kind:       kind,
		ProjectID:  project.ID,
		Name:       project.Name,
		Restaurant: project.Restaurant.Name,
		Categories: len(project.Categories),
		Items:      project.ItemCount(),
		Timestamp:  at.Unix(),
	}
}

// WithSnapshot attaches a copy of the project to the event.
func (e ProjectEvent) WithSnapshot(project models.MenuProject) ProjectEvent {
	p := project.Clone()
	e.Project = &p
	return e
}

// Send marshals the event and writes it to dst under topic.
func Send(dst Destination, topic string, e ProjectEvent) error {
	msg, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Kind, err)
	}
	if err := dst.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("failed to write %s event to %s: %w", e.Kind, topic, err)
	}
	return nil
}

// FromConfig picks the configured destination: Kafka when enabled, else the
// event file. It returns nil when neither is configured.
func FromConfig(cfg *models.Config) (Destination, error) {
	switch {
	case cfg.Kafka.Enabled:
		k, err := NewKafkaOutput(cfg.Kafka.BrokerList)
		if err != nil {
			return nil, err
		}
		return k, nil
	case cfg.EventFile != "":
		j, err := NewJSONOutput(cfg.EventFile)
		if err != nil {
			return nil, err
		}
		return j, nil
	default:
		return nil, nil
	}
}

type ConsoleOutput struct {
	w io.Writer
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleOutput{w: w}
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", topic, msg); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// JSONOutput appends one JSON document per line to a single file. The topic
// is stored alongside the message so several topics can share the file.
type JSONOutput struct {
	mu   sync.Mutex
	file *os.File
}

type jsonLine struct {
	Topic   string          `json:"topic"`
	Message json.RawMessage `json:"message"`
}

func NewJSONOutput(path string) (*JSONOutput, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open event file: %w", err)
	}
	return &JSONOutput{file: file}, nil
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	if !json.Valid(msg) {
		return fmt.Errorf("message for %s is not valid JSON", topic)
	}
	line, err := json.Marshal(jsonLine{Topic: topic, Message: msg})
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return fmt.Errorf("event file is closed")
	}
	_, err = j.file.Write(append(line, '\n'))
	return err
}

func (j *JSONOutput) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}

type KafkaOutput struct {
	producer sarama.SyncProducer
}

func NewKafkaOutput(brokers string) (*KafkaOutput, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(brokers, ",")
	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka producer created with brokers %v", brokerList)
	return NewKafkaOutputWithProducer(producer), nil
}

func NewKafkaOutputWithProducer(producer sarama.SyncProducer) *KafkaOutput {
	return &KafkaOutput{producer: producer}
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is closed")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", topic, err)
		return err
	}
	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}
