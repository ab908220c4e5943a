package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client is the command surface the repositories depend on. Wrapping
// redis.UniversalClient keeps single-node and cluster deployments behind
// one mockable interface.
type Client interface {
	redis.UniversalClient
}
