package middleware

import (
	"net/http"
	"strconv"

	"github.com/plantsec/hr-access-backend-go/internal/domain/master/device"
	"github.com/plantsec/hr-access-backend-go/internal/handler/http/response"
	"golang.org/x/crypto/bcrypt"
)

// Header names the reader firmware sends with every event.
const (
	HeaderDeviceID  = "X-Device-ID"
	HeaderDeviceKey = "X-Device-Key"
)

// DeviceAuth authenticates biometric readers by device id and API key. Keys
// are stored as bcrypt hashes; a disabled device is rejected even with a
// valid key.
func DeviceAuth(deviceRepo device.DeviceRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			idHeader := r.Header.Get(HeaderDeviceID)
			key := r.Header.Get(HeaderDeviceKey)
			if idHeader == "" || key == "" {
				response.Unauthorized(w, "Missing device credentials")
				return
			}

			id, err := strconv.ParseInt(idHeader, 10, 64)
			if err != nil {
				response.Unauthorized(w, "Invalid device id")
				return
			}

			dev, err := deviceRepo.GetByID(r.Context(), id)
			if err != nil {
				response.HandleError(w, device.ErrInvalidAPIKey)
				return
			}
			if !dev.Active {
				response.HandleError(w, device.ErrInvalidAPIKey)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(dev.APIKeyHash), []byte(key)); err != nil {
				response.HandleError(w, device.ErrInvalidAPIKey)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
