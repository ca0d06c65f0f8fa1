package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs one request at a time through the rest of the chain.
// Guards check state that handlers later mutate (username uniqueness,
// todo quota), so a whole request pass has to be atomic.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex

	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()

		c.Next()
	}
}
