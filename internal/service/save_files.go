// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pydt-client/internal/utils"
	"github.com/MKhiriev/go-pydt-client/models"
)

const tempPattern = ".pydt-*.tmp"

var gzipMagic = []byte{0x1f, 0x8b}

// SaveFileName returns the local file name of the downloaded save of a game.
// The game id suffix keeps games whose names sanitize alike apart.
func SaveFileName(gameID, gameName, accountName, ext string) string {
	return utils.SanitizeFileName(gameName) + "_" + utils.SanitizeFileName(accountName) +
		"_" + utils.SanitizeFileName(gameID) + ext
}

// downloadSave fetches the current save of game and places it in the save
// directory. Nothing is left behind on failure.
func (t *transferService) downloadSave(ctx context.Context, account models.Account, game models.Game) (string, error) {
	info, err := t.remote.GetTurnDownload(ctx, account.Token, game.GameID)
	if err != nil {
		return "", fmt.Errorf("get download url: %w", err)
	}

	body, err := t.remote.DownloadSave(ctx, info.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("download save: %w", err)
	}
	defer body.Close()

	tmp, err := createTemp(t.opts.SaveDir)
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	if err = decompressTo(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write save: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write save: %w", err)
	}

	dst := filepath.Join(t.opts.SaveDir, SaveFileName(game.GameID, game.DisplayName, account.Name, t.opts.Extension))
	if err = os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("place save: %w", err)
	}

	return dst, nil
}

// createTemp creates the temp file in dir, creating dir once if missing.
func createTemp(dir string) (*os.File, error) {
	f, err := os.CreateTemp(dir, tempPattern)
	if errors.Is(err, fs.ErrNotExist) {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return nil, fmt.Errorf("create save dir: %w", mkErr)
		}
		f, err = os.CreateTemp(dir, tempPattern)
	}
	if err != nil {
		return nil, fmt.Errorf("create temp save: %w", err)
	}
	return f, nil
}

// decompressTo gunzips src into dst. A body that is already plain, because
// the transport decoded it, is copied as is.
func decompressTo(dst io.Writer, src io.Reader) error {
	br := bufio.NewReader(src)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if !bytes.Equal(head, gzipMagic) {
		_, err = io.Copy(dst, br)
		return err
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return err
	}
	defer zr.Close()

	_, err = io.Copy(dst, zr)
	return err
}

func gzipFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err = io.Copy(zw, f); err != nil {
		return nil, err
	}
	if err = zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
