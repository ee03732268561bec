package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/config"
	"github.com/d60-Lab/comedor/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct{ *http.Server }

func New(addr string, h http.Handler) *Server {
	return &Server{Server: &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}}
}

// NewFromConfig 按 server 配置设置读写超时
func NewFromConfig(cfg config.ServerConfig, h http.Handler) *Server {
	s := New(cfg.Addr(), h)
	s.ReadTimeout = cfg.ReadTimeout
	s.WriteTimeout = cfg.WriteTimeout
	return s
}

// Run 阻塞直到 ctx 取消（优雅关闭）或监听失败
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.ListenAndServe() }()
	logger.Info("http server listening", zap.String("addr", s.Addr))

	select {
	case <-ctx.Done():
		ctx2, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := s.Shutdown(ctx2)
		<-errCh
		logger.Info("http server stopped")
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
