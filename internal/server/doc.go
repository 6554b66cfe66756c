// Package server は、HTTPリスナーの起動と並行実行を管理します。
//
// 責務:
//   - 1つのhttp.Serverをラップしたリスナーの起動
//   - 複数リスナーを独立したゴルーチンで同時に動かす
//   - リスナーの起動・異常終了のログ出力
//
// 仕様:
//   - 標準ライブラリのnet/httpを使用
//   - リスナー間で状態やキャンセルを共有しない
//   - グレースフルシャットダウンや再起動は行わない（Shutdownはテスト用）
package server
