package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/seqview"
	"github.com/rawbytedev/seqview/pkg/seqwire"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	base := make([]uint64, 1<<16)
	for i := range base {
		base[i] = uint64(i)
	}
	l := seqview.Adopt(base)
	enc := seqwire.NewEncoder[uint64](seqwire.Uint64Codec{}, seqwire.Options{Compress: true})
	dec := seqwire.NewDecoder[uint64](seqwire.Uint64Codec{})

	for i := 0; i < 10000; i++ {
		v := l.Slice(i%1000, i%1000+4096)
		if err := v.Set(0, uint64(i)); err != nil {
			log.Fatal(err)
		}
		data, err := enc.Encode(v)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := dec.Decode(data); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
