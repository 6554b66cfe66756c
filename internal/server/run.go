package server

import (
	"errors"
	"sync"
)

// RunAll は各サーバーを個別のゴルーチンで起動し、全て終了するまで待つ
//
// サーバー同士は互いに干渉しない。1つが失敗しても他は動き続け、
// 再起動も行わない。戻り値は失敗したサーバーのエラーをまとめたもの
func RunAll(servers ...*Server) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	wg.Add(len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			defer wg.Done()
			if err := srv.ListenAndServe(); err != nil {
				srv.logger.Error("サーバーが異常終了しました", "error", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}
