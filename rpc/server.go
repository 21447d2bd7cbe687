package rpc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/powerman/rpc-codec/jsonrpc2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/net/netutil"
	"golang.org/x/net/websocket"

	"github.com/mikotoken/vault/common"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "rpc"})

// Config holds the listener settings of the RPC server.
type Config struct {
	Address        string
	Port           string
	MaxConnections int
	Timeout        time.Duration
	EnableTx       bool
}

// ConfigFromViper reads the RPC configuration from viper.
func ConfigFromViper() Config {
	return Config{
		Address:        viper.GetString(common.CfgRPCAddress),
		Port:           viper.GetString(common.CfgRPCPort),
		MaxConnections: viper.GetInt(common.CfgRPCMaxConnections),
		Timeout:        time.Duration(viper.GetInt(common.CfgRPCTimeoutSecs)) * time.Second,
		EnableTx:       viper.GetBool(common.CfgRPCEnableTx),
	}
}

// VaultRPCService holds the methods served under the "vault" namespace.
type VaultRPCService struct {
	ledger   *ledger.Ledger
	reports  *keeper.ReportStore
	enableTx bool
}

// VaultRPCServer is an instance of RPC service.
type VaultRPCServer struct {
	*VaultRPCService

	config  Config
	server  *http.Server
	handler *rpc.Server
	router  *mux.Router

	// Life cycle
	wg     *sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewVaultRPCServer creates a new instance of VaultRPCServer. reports may be
// nil when no keeper runs against the ledger.
func NewVaultRPCServer(l *ledger.Ledger, reports *keeper.ReportStore, config Config) *VaultRPCServer {
	t := &VaultRPCServer{
		VaultRPCService: &VaultRPCService{
			ledger:   l,
			reports:  reports,
			enableTx: config.EnableTx,
		},
		config: config,
		wg:     &sync.WaitGroup{},
	}

	s := rpc.NewServer()
	if err := s.RegisterName("vault", t.VaultRPCService); err != nil {
		logger.Panicf("Failed to register RPC service: %v", err)
	}
	t.handler = s

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	t.router = mux.NewRouter()
	t.router.Handle("/", &defaultHTTPHandler{})
	t.router.Handle("/rpc", corsMiddleware(http.TimeoutHandler(jsonrpc2.HTTPHandler(s), timeout, timeoutBody)))
	t.router.Handle("/ws", websocket.Handler(func(ws *websocket.Conn) {
		s.ServeCodec(jsonrpc2.NewServerCodec(ws, s))
	}))

	t.server = &http.Server{
		Handler:           t.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return t
}

const timeoutBody = `{"error": {"message":"Timeout"}}`

// Handler returns the HTTP handler of the server.
func (t *VaultRPCServer) Handler() http.Handler {
	return t.router
}

// Start creates the main goroutine.
func (t *VaultRPCServer) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	t.ctx = c
	t.cancel = cancel

	t.wg.Add(1)
	go t.mainLoop()
}

func (t *VaultRPCServer) mainLoop() {
	defer t.wg.Done()

	go t.serve()

	<-t.ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	t.server.Shutdown(shutdownCtx)
}

func (t *VaultRPCServer) serve() {
	address := net.JoinHostPort(t.config.Address, t.config.Port)
	l, err := net.Listen("tcp", address)
	if err != nil {
		logger.WithFields(log.Fields{"error": err, "address": address}).Error("Failed to create listener")
		t.cancel()
		return
	}
	logger.WithFields(log.Fields{"address": address}).Info("RPC server started")
	defer l.Close()

	if t.config.MaxConnections > 0 {
		l = netutil.LimitListener(l, t.config.MaxConnections)
	}

	if err := t.server.Serve(l); err != nil && err != http.ErrServerClosed {
		logger.Errorf("RPC server stopped: %v", err)
	}
}

func corsMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// Stop notifies all goroutines to stop without blocking.
func (t *VaultRPCServer) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Wait blocks until all goroutines stop.
func (t *VaultRPCServer) Wait() {
	t.wg.Wait()
}

type defaultHTTPHandler struct {
}

func (dh *defaultHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Vault node is up and running!")
}
