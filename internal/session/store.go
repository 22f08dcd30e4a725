package session

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopfront/internal/domain"
)

const (
	cartCookie = "cart"
	sidCookie  = "sid"
)

// Store persists one cart per browser session. Load never fails: a missing or
// tampered cart comes back empty.
type Store interface {
	Load(c *fiber.Ctx) domain.Cart
	Save(c *fiber.Ctx, cart domain.Cart)
	Clear(c *fiber.Ctx)
}

// CookieStore keeps the whole cart client-side in a signed cookie, so no
// server-side session state exists.
type CookieStore struct {
	Secret []byte
}

func NewCookieStore(secret string) *CookieStore { return &CookieStore{Secret: []byte(secret)} }

func (s *CookieStore) Load(c *fiber.Ctx) domain.Cart {
	return Decode(s.Secret, c.Cookies(cartCookie))
}

func (s *CookieStore) Save(c *fiber.Ctx, cart domain.Cart) {
	if len(cart) == 0 {
		s.Clear(c)
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     cartCookie,
		Value:    Encode(s.Secret, cart),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *CookieStore) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{Name: cartCookie, Value: "", Path: "/", HTTPOnly: true, MaxAge: -1})
}

// MemoryStore keeps carts server-side keyed by a uuid sid cookie. Same Store
// contract, different persistence mechanism.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{carts: map[string]domain.Cart{}} }

func (s *MemoryStore) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies(sidCookie)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: sidCookie, Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

func (s *MemoryStore) Load(c *fiber.Ctx) domain.Cart {
	sid := s.ensureSID(c)
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart := domain.Cart{}
	for k, v := range s.carts[sid] {
		cart[k] = v
	}
	return cart
}

func (s *MemoryStore) Save(c *fiber.Ctx, cart domain.Cart) {
	sid := s.ensureSID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(cart) == 0 {
		delete(s.carts, sid)
		return
	}
	s.carts[sid] = cart
}

func (s *MemoryStore) Clear(c *fiber.Ctx) {
	sid := s.ensureSID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}
