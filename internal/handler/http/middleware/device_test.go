package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plantsec/hr-access-backend-go/internal/domain/master/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeDeviceRepo struct {
	devices map[int64]device.Device
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id int64) (device.Device, error) {
	dev, ok := f.devices[id]
	if !ok {
		return device.Device{}, device.ErrDeviceNotFound
	}
	return dev, nil
}

func deviceTestServer(t *testing.T, repo device.DeviceRepository) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return DeviceAuth(repo)(next)
}

func TestDeviceAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("reader-key-1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeDeviceRepo{devices: map[int64]device.Device{
		5: {ID: 5, Name: "Torniquete 1", APIKeyHash: string(hash), Active: true},
		6: {ID: 6, Name: "Torniquete 2", APIKeyHash: string(hash), Active: false},
	}}
	handler := deviceTestServer(t, repo)

	cases := []struct {
		name     string
		deviceID string
		key      string
		want     int
	}{
		{"valid credentials", "5", "reader-key-1", http.StatusOK},
		{"wrong key", "5", "not-the-key", http.StatusUnauthorized},
		{"unknown device", "9", "reader-key-1", http.StatusUnauthorized},
		{"disabled device", "6", "reader-key-1", http.StatusUnauthorized},
		{"missing headers", "", "", http.StatusUnauthorized},
		{"non-numeric id", "five", "reader-key-1", http.StatusUnauthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/events", nil)
			if c.deviceID != "" {
				req.Header.Set(HeaderDeviceID, c.deviceID)
			}
			if c.key != "" {
				req.Header.Set(HeaderDeviceKey, c.key)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
