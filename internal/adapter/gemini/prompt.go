package gemini

import (
	"fmt"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

const (
	chatModel   = "gemini-2.5-flash"
	reportModel = "gemini-2.5-flash-lite"
)

// chatSystemInstruction sets the tone for the conversational companion.
const chatSystemInstruction = `Kamu adalah pendamping empatik di platform SafeSpace, sebuah ruang aman bagi penyintas kekerasan seksual.
Tugas utamamu adalah mendengarkan, memvalidasi perasaan pengguna, dan memberikan dukungan emosional awal.
Gunakan bahasa Indonesia yang sopan, lembut, dan menenangkan.
Jangan pernah menghakimi, menyalahkan, atau memaksa pengguna bercerita jika mereka belum siap.
Fokus pada perasaan mereka saat ini. Jika ada indikasi bahaya darurat, sarankan mereka menghubungi profesional dengan lembut.`

// reportSystemInstruction mandates the four-section complaint form structure.
const reportSystemInstruction = `Anda adalah ahli dalam membantu penyintas kekerasan seksual mendokumentasikan pengalaman mereka dengan formal dan profesional.

Tugasmu adalah mengubah data terstruktur menjadi narasi penuh untuk FORMULIR PENGADUAN KEKERASAN SEKSUAL yang siap diajukan ke otoritas resmi.

STRUKTUR OUTPUT YANG WAJIB:

## FORMULIR PENGADUAN KEKERASAN SEKSUAL

### I. IDENTIFIKASI KEBUTUHAN
(Jelaskan mengapa korban membuat laporan ini - apa tujuan atau kebutuhan mereka saat ini)

### II. IDENTIFIKASI PELAKU
(Jelaskan siapa pelaku dan posisi/hubungan mereka dengan korban)

### III. KRONOLOGI KEJADIAN
(Ceritakan kejadian secara urut dan detail dari perspektif korban menggunakan sudut pandang "Saya")

### IV. BUKTI TERLAMPIR
(Sebutkan jenis bukti/dokumentasi yang tersedia)

CATATAN PENTING:
- Gunakan perspektif orang pertama ("Saya") dalam narasi kronologi
- Tulis dalam bahasa Indonesia formal yang profesional
- Jangan menambahkan asumsi di luar data yang diberikan
- Pastikan setiap bagian diisi sesuai struktur di atas
- Tujuan: membuat dokumen yang bisa langsung diajukan ke pihak berwajib`

// buildReportPrompt embeds the structured field values verbatim in a fixed
// template.
func buildReportPrompt(in domain.ReportInput) string {
	return fmt.Sprintf(`Berdasarkan informasi berikut, buatkan FORMULIR PENGADUAN KEKERASAN SEKSUAL yang lengkap dan formal:

Lokasi Kejadian: %s
Identitas Pelaku: %s
Jenis Kekerasan: %s
Bukti Tersedia: %s
Tujuan Pelapor: %s

Buatkan formulir lengkap dengan struktur:
1. IDENTIFIKASI KEBUTUHAN
2. IDENTIFIKASI PELAKU
3. KRONOLOGI KEJADIAN (menggunakan sudut pandang "Saya")
4. BUKTI TERLAMPIR

Pastikan narasi tertulis dalam bahasa Indonesia formal dan siap untuk diajukan ke otoritas.`,
		in.Location, in.Perpetrator, in.Description, in.Evidence, in.UserGoal)
}
