package core

// Entity is a stable identifier into the world arena
// Zero is never allocated and means "no entity"
type Entity uint64
