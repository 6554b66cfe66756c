package static

import (
	"net/http"
	"path"
)

// indexOnlyFS はディレクトリ一覧を出さないファイルシステム
//
// index.html を持たないディレクトリは存在しないものとして扱う。
// index.html を持つディレクトリは http.FileServer がその内容を返す
type indexOnlyFS struct {
	fs http.FileSystem
}

func (f indexOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	index, err := f.fs.Open(path.Join(name, indexFile))
	if err != nil {
		file.Close()
		return nil, err
	}
	index.Close()

	return file, nil
}
