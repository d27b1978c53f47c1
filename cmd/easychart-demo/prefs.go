package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

type savedPrefs struct {
	Data       string  `json:"data"`
	Sheet      string  `json:"sheet"`
	Background string  `json:"background"`
	Alpha      float64 `json:"alpha"`
	Light      bool    `json:"light"`
}

const settingsDir = "org.frameloss.easychart"

func prefsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsDir, "prefs.json"), nil
}

// savePrefs remembers the viewer settings for next start, best effort only
func savePrefs(p savedPrefs) {
	fileName, err := prefsPath()
	if err != nil {
		log.Println(err)
		return
	}
	if err = os.MkdirAll(filepath.Dir(fileName), 0o700); err != nil {
		log.Println(err)
		return
	}
	fileBytes, err := json.Marshal(p)
	if err != nil {
		log.Println(err)
		return
	}
	if err = os.WriteFile(fileName, fileBytes, 0o600); err != nil {
		log.Println(err)
		return
	}
	log.Println("wrote", len(fileBytes), "bytes to", fileName)
}

func loadPrefs() savedPrefs {
	p := savedPrefs{Alpha: 0.35}
	fileName, err := prefsPath()
	if err != nil {
		log.Println(err)
		return p
	}
	b, err := os.ReadFile(fileName)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println(err)
		}
		return p
	}
	if err = json.Unmarshal(b, &p); err != nil {
		log.Println(err)
	}
	return p
}
