package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// AssetsRoot is an optional extra asset directory searched after ./assets.
var AssetsRoot string

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".dds"}

func ResolveAssetPath(relPath string) string {
	// Try local assets first
	localPath := filepath.Join("assets", relPath)
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	if AssetsRoot != "" {
		rootPath := filepath.Join(AssetsRoot, relPath)
		if _, err := os.Stat(rootPath); err == nil {
			return rootPath
		}
	}

	return localPath // Fallback to local even if not exists
}

// FindPageFile locates a page description by path or by bare name.
func FindPageFile(name string) string {
	if name == "" {
		return ""
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}

	candidates := []string{
		filepath.Join("assets", "pages", name),
		ResolveAssetPath(filepath.Join("pages", name)),
	}
	if filepath.Ext(name) == "" {
		for _, ext := range []string{".json", ".json.lz4", ".pkg"} {
			candidates = append(candidates,
				filepath.Join("assets", "pages", name+ext),
				ResolveAssetPath(filepath.Join("pages", name+ext)),
			)
		}
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// FindImageFile locates an element image next to the page file or under the
// asset directories, trying the known extensions when name has none.
func FindImageFile(name, pageDir string) string {
	if name == "" {
		return ""
	}

	searchDirs := []string{pageDir, "assets/images", "assets"}
	if AssetsRoot != "" {
		searchDirs = append(searchDirs, filepath.Join(AssetsRoot, "images"), AssetsRoot)
	}

	names := []string{name}
	if filepath.Ext(name) == "" {
		names = names[:0]
		for _, ext := range imageExtensions {
			names = append(names, name+ext)
		}
	}

	for _, dir := range searchDirs {
		for _, n := range names {
			p := filepath.Join(dir, n)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// IsImageFile reports whether path has an extension DecodeImage understands.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".lz4")))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
