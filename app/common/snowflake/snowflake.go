package snowflake

import (
	"hash/fnv"
	"os"
	"strconv"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *bwsnowflake.Node
)

func initNode() {
	if node != nil {
		return
	}
	// 主机名 hash 取低 10 位作为节点号
	host, _ := os.Hostname()
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	n, err := bwsnowflake.NewNode(int64(h.Sum32()) & 0x3FF)
	if err != nil {
		n, _ = bwsnowflake.NewNode(1)
	}
	node = n
}

func Next() int64 {
	once.Do(initNode)
	return node.Generate().Int64()
}

// TempName returns a unique scratch file name such as outfit_1790012345678.png.
func TempName(prefix, ext string) string {
	return prefix + "_" + strconv.FormatInt(Next(), 10) + ext
}
