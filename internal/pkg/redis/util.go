package redis

import (
	"github.com/redis/go-redis/v9"
)

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}

// Close 关闭连接，未初始化时什么也不做
func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
