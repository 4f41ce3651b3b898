package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/nanowar-mp/logger"
	"github.com/automoto/nanowar-mp/shared/messages"
	"github.com/automoto/nanowar-mp/shared/protocol"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

var (
	ErrNotConnected   = errors.New("not connected")
	ErrConnectionLost = errors.New("connection lost")
)

var log = logger.For("client")

// Client is the duplex message channel to the game server. Router callbacks
// run on necs goroutines and only queue inbound messages; the game loop
// drains them once per tick. All shared fields are protected by mu.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn

	inbox []messages.Inbound
}

func NewClient() *Client {
	return &Client{
		state: StateDisconnected,
	}
}

// Connect dials the server in a background goroutine. Progress is observed
// through State and LastError.
func (c *Client) Connect(address, path string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Info("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()
	})

	protocol.RegisterInbound(c.enqueue)

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.WithError(err).Warn("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateError
			c.lastError = fmt.Errorf("%w: %v", ErrConnectionLost, err)
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.WithError(err).Warn("transport error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address + path)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.inbox = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Send serializes msg and writes it as one binary frame. Fire and forget:
// nothing waits for a reply.
func (c *Client) Send(msg messages.Message) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := protocol.Encode(msg)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", msg.Type(), err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// Drain returns every message received since the last call, in arrival
// order. Non-blocking.
func (c *Client) Drain() []messages.Inbound {
	c.mu.Lock()
	out := c.inbox
	c.inbox = nil
	c.mu.Unlock()
	return out
}

func (c *Client) enqueue(msg messages.Inbound) {
	c.mu.Lock()
	c.inbox = append(c.inbox, msg)
	c.mu.Unlock()
}

func (c *Client) setError(err error) {
	log.WithError(err).Error("client failed")
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
