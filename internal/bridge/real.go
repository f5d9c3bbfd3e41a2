package bridge

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/fwcsim/fwc/internal/runtime"
)

// RealClient talks to an actual MQTT broker.
type RealClient struct {
	client paho.Client
}

// NewRealClient connects to the broker and subscribes the inbox to the
// parameter topic.
func NewRealClient(broker, clientID string, inbox *Inbox) (*RealClient, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	sub := client.Subscribe(TopicParameters, 1, func(_ paho.Client, msg paho.Message) {
		// Malformed payloads are dropped; the broker side owns them.
		_ = inbox.Accept(msg.Payload())
	})
	if !sub.WaitTimeout(10 * time.Second) {
		client.Disconnect(1000)
		return nil, fmt.Errorf("subscribe timeout")
	}
	if err := sub.Error(); err != nil {
		client.Disconnect(1000)
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	return &RealClient{client: client}, nil
}

// PublishSnapshot sends the outputs of one tick, QoS 0.
func (c *RealClient) PublishSnapshot(snap runtime.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	token := c.client.Publish(TopicOutputs, 0, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// PublishWarning sends a warning event, QoS 1 so it survives a flaky
// link.
func (c *RealClient) PublishWarning(event WarningEvent) error {
	payload, err := FormatWarning(event)
	if err != nil {
		return fmt.Errorf("format warning: %w", err)
	}
	token := c.client.Publish(TopicWarnings, 1, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish warning timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish warning: %w", err)
	}
	return nil
}

// Close disconnects from the broker.
func (c *RealClient) Close() error {
	c.client.Disconnect(1000)
	return nil
}
