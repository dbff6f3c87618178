package ai

import (
	"fmt"

	"adminforge/internal/models"
)

// Fixed user-facing strings for gateway failures. Callers never see raw
// errors; failures are logged and collapse to one of these.
const (
	MsgChatError    = "Saya mengalami kesalahan saat menghubungkan ke Gemini. Silakan periksa kunci API Anda."
	MsgExplainError = "Gagal mengambil penjelasan."
	MsgExplainEmpty = "Tidak dapat menjelaskan perintah."
	MsgConfigError  = "Gagal membuat konfigurasi. Silakan coba lagi."
	MsgConfigEmpty  = "Tidak ada respons yang dihasilkan."
)

// ChatSystemInstruction builds the assistant persona for a chat session
// bound to one connection profile.
func ChatSystemInstruction(cfg models.SessionConfig) string {
	return fmt.Sprintf(`Anda adalah asisten AI ahli Administrator Sistem Linux yang tertanam dalam aplikasi manajemen jarak jauh.
Pengguna saat ini sedang mengonfigurasi server dengan konteks berikut:
OS: %s
IP: %s
Hostname: %s
User: %s
Domain: %s

Berikan perintah shell yang ringkas, akurat, dan penjelasannya dalam Bahasa Indonesia yang baik dan benar.
Jika pengguna meminta perintah, prioritaskan memberikan blok perintah yang tepat.
Format perintah dalam blok kode markdown.`,
		cfg.OS, cfg.IPAddress, cfg.Hostname, cfg.Username, cfg.Domain)
}

// ChatGreeting opens every fresh chat transcript.
func ChatGreeting(cfg models.SessionConfig) string {
	return fmt.Sprintf("Halo! Saya asisten Administrasi Linux Anda. Saya tahu Anda sedang bekerja di %s (%s). Ada yang bisa saya bantu?",
		cfg.IPAddress, cfg.Domain)
}

func explainPrompt(command string) string {
	return fmt.Sprintf("Jelaskan perintah Linux berikut secara singkat dan jelas dalam Bahasa Indonesia untuk administrator sistem. Jelaskan flag/opsi kuncinya.\n\nPerintah:\n%s", command)
}

func deepPrompt(prompt, context string) string {
	return fmt.Sprintf("Konteks: %s\n\nTugas: %s", context, prompt)
}

// DeepTaskPrompt is the generation request issued for a topic.
func DeepTaskPrompt(topicTitle string) string {
	return fmt.Sprintf(`Buat konfigurasi produksi yang komprehensif, siap pakai, atau skrip shell yang kompleks untuk %s.
Sertakan komentar yang menjelaskan logika dalam Bahasa Indonesia. Gunakan IP dan Domain spesifik yang disediakan dalam konteks.
Fokus pada praktik terbaik dan keamanan.`, topicTitle)
}

// DeepContext carries the active profile facts into a generation request.
func DeepContext(topicTitle, topicDescription string, cfg models.SessionConfig) string {
	return fmt.Sprintf("Topic: %s\nDescription: %s\nOS: %s\nIP: %s\nDomain: %s",
		topicTitle, topicDescription, cfg.OS, cfg.IPAddress, cfg.Domain)
}
