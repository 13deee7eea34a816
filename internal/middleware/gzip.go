package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// compressible сообщает, стоит ли сжимать ответ с таким Content-Type
func compressible(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == "application/json" || mediaType == "text/html"
}

// gzipBody распаковывает тело запроса и закрывает исходный поток
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func (b gzipBody) Close() error {
	if err := b.Reader.Close(); err != nil {
		_ = b.src.Close()
		return err
	}
	return b.src.Close()
}

// gzipWriter решает при записи заголовков, сжимать ли ответ.
// Сжимаются только успешные JSON и HTML ответы, QR коды и редиректы уходят как есть.
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status < http.StatusMultipleChoices && compressible(w.Header().Get("Content-Type")) {
		w.Header().Del("Content-Length")
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw != nil {
		return w.zw.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *gzipWriter) close() error {
	if w.zw == nil {
		return nil
	}
	err := w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
	return err
}

// Gzip распаковывает тела запросов с Content-Encoding: gzip
// и сжимает ответы для клиентов, приславших Accept-Encoding: gzip
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				zr, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Warn("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusBadRequest)
					_, _ = io.WriteString(w, `{"error":"Invalid gzip body"}`)
					return
				}
				r.Body = gzipBody{Reader: zr, src: r.Body}
				r.Header.Del("Content-Encoding")
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipWriter{ResponseWriter: w}
			defer func() {
				if err := gw.close(); err != nil {
					logger.Warn("failed to finish gzip response", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
