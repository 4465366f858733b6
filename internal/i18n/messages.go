package i18n

const (
	CommandFailed Key = "An error occurred while running the command: %s"

	HelpListTitle       Key = "Command List"
	HelpListDescription Key = "Here is a list of all available commands:"
	HelpListFooter      Key = "Use /help [command name] for more details"
	HelpGeneral         Key = "📌 General"
	HelpModeration      Key = "🛡️ Moderation"
	HelpUtility         Key = "🔧 Utility"
	HelpNotFound        Key = "There is no command with the name `%s`!"
	HelpDetailTitle     Key = "Command: /%s"
	HelpSubcommands     Key = "Subcommands"
	HelpOptions         Key = "Options"
	HelpRequired        Key = "(required)"
	HelpOptional        Key = "(optional)"

	StatusOffline     Key = "❌ Minecraft server `%s` is offline or could not be found."
	StatusTitle       Key = "Server Status: %s"
	StatusOnline      Key = "✅ Server is online with %s of %s players."
	StatusVersion     Key = "Version"
	StatusUnknown     Key = "Unknown"
	StatusAddress     Key = "Address"
	StatusMOTD        Key = "MOTD"
	StatusNoMOTD      Key = "No MOTD"
	StatusPlayers     Key = "Online Players (%s)"
	StatusMorePlayers Key = "and %s more players..."
	StatusMods        Key = "Mods (%s)"
	StatusMoreMods    Key = "and %s more mods..."
	StatusPlugins     Key = "Plugins (%s)"
	StatusMorePlugins Key = "and %s more plugins..."
	StatusError       Key = "An error occurred while checking the server status: %s"

	GuildWelcomeTitle       Key = "Thanks for adding me!"
	GuildWelcomeDescription Key = "Use `/help` to see the list of available commands."
	GuildSetupTitle         Key = "Initial Setup"
	GuildSetupValue         Key = "For the best experience, create a `%s` channel for new member notices and a `%s` channel for logging."
	GuildFooter             Key = "This bot is running on %s servers"
	MemberTitle             Key = "New Member!"
	MemberDescription       Key = "Welcome to the server, %s! We're glad you joined."
	MemberFooter            Key = "Member #%s"
	DeleteTitle             Key = "Message Deleted"
	DeleteDescription       Key = "Message from %s was deleted in %s"
	DeleteContent           Key = "Content"
	DeleteNoContent         Key = "No text content"
	Activity                Key = "%s server | /help"

	Ping          Key = "🏓 Pong! %sms"
	PingNoLatency Key = "🏓 Pong!"
)

var english = func() map[Key]string {
	m := make(map[Key]string, len(allKeys))
	for _, k := range allKeys {
		m[k] = string(k)
	}
	return m
}()

var allKeys = []Key{
	CommandFailed,
	HelpListTitle, HelpListDescription, HelpListFooter, HelpGeneral, HelpModeration, HelpUtility,
	HelpNotFound, HelpDetailTitle, HelpSubcommands, HelpOptions, HelpRequired, HelpOptional,
	StatusOffline, StatusTitle, StatusOnline, StatusVersion, StatusUnknown, StatusAddress,
	StatusMOTD, StatusNoMOTD, StatusPlayers, StatusMorePlayers, StatusMods, StatusMoreMods,
	StatusPlugins, StatusMorePlugins, StatusError,
	GuildWelcomeTitle, GuildWelcomeDescription, GuildSetupTitle, GuildSetupValue, GuildFooter,
	MemberTitle, MemberDescription, MemberFooter,
	DeleteTitle, DeleteDescription, DeleteContent, DeleteNoContent,
	Activity,
	Ping, PingNoLatency,
}

var indonesian = map[Key]string{
	CommandFailed: "Terjadi kesalahan saat menjalankan command: %s",

	HelpListTitle:       "Daftar Perintah",
	HelpListDescription: "Berikut daftar semua perintah yang tersedia:",
	HelpListFooter:      "Gunakan /help [nama perintah] untuk detail lebih lanjut",
	HelpGeneral:         "📌 Umum",
	HelpModeration:      "🛡️ Moderasi",
	HelpUtility:         "🔧 Utilitas",
	HelpNotFound:        "Tidak ada perintah dengan nama `%s`!",
	HelpDetailTitle:     "Perintah: /%s",
	HelpSubcommands:     "Subperintah",
	HelpOptions:         "Opsi",
	HelpRequired:        "(wajib)",
	HelpOptional:        "(opsional)",

	StatusOffline:     "❌ Server Minecraft `%s` sedang offline atau tidak ditemukan.",
	StatusTitle:       "Status Server: %s",
	StatusOnline:      "✅ Server sedang online dengan %s pemain dari maksimal %s pemain.",
	StatusVersion:     "Versi",
	StatusUnknown:     "Tidak diketahui",
	StatusAddress:     "Alamat",
	StatusMOTD:        "MOTD",
	StatusNoMOTD:      "Tidak ada MOTD",
	StatusPlayers:     "Pemain Online (%s)",
	StatusMorePlayers: "dan %s pemain lainnya...",
	StatusMods:        "Mods (%s)",
	StatusMoreMods:    "dan %s mod lainnya...",
	StatusPlugins:     "Plugins (%s)",
	StatusMorePlugins: "dan %s plugin lainnya...",
	StatusError:       "Terjadi kesalahan saat memeriksa status server: %s",

	GuildWelcomeTitle:       "Terima kasih telah menambahkan saya!",
	GuildWelcomeDescription: "Gunakan `/help` untuk melihat daftar perintah yang tersedia.",
	GuildSetupTitle:         "Setup Awal",
	GuildSetupValue:         "Untuk pengalaman terbaik, silakan buat channel `%s` untuk pemberitahuan member baru dan `%s` untuk logging.",
	GuildFooter:             "Bot ini berjalan di %s server",
	MemberTitle:             "Anggota Baru!",
	MemberDescription:       "Selamat datang di server, %s! Kami senang kamu bergabung.",
	MemberFooter:            "Member #%s",
	DeleteTitle:             "Pesan Dihapus",
	DeleteDescription:       "Pesan dari %s dihapus dari %s",
	DeleteContent:           "Konten",
	DeleteNoContent:         "Tidak ada konten text",
	Activity:                "%s server | /help",

	Ping:          "🏓 Pong! %sms",
	PingNoLatency: "🏓 Pong!",
}
