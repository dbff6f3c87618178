package catalog

import "adminforge/internal/models"

// The static topic library. Loaded once, never mutated at runtime.
var topics = []models.Topic{
	{
		ID:              "network-ip",
		Category:        "Jaringan",
		Title:           "Konfigurasi Alamat IP",
		Description:     "Mengatur alamat IP statis menggunakan /etc/network/interfaces.",
		AIPromptContext: "Konfigurasi jaringan Linux Debian, /etc/network/interfaces, perintah ip",
		Steps: []models.CommandStep{
			{
				ID:              "check-ip",
				Title:           "Cek IP Saat Ini",
				Description:     "Verifikasi antarmuka jaringan yang aktif saat ini.",
				CommandTemplate: "ip addr show",
			},
			{
				ID:              "edit-interfaces",
				Title:           "Edit File Interfaces",
				Description:     "Buka file konfigurasi jaringan.",
				CommandTemplate: "sudo nano /etc/network/interfaces",
			},
			{
				ID:          "static-config",
				Title:       "Konfigurasi IP Statis",
				Description: "Tempelkan ini ke dalam file. Ganti nama antarmuka (misal: eth0) jika perlu.",
				CommandTemplate: "auto eth0\n" +
					"iface eth0 inet static\n" +
					"    address {{IP}}\n" +
					"    netmask 255.255.255.0\n" +
					"    gateway 192.168.1.1\n" +
					"    dns-nameservers 8.8.8.8 8.8.4.4",
				HighlightedVars: []string{"{{IP}}"},
			},
			{
				ID:              "restart-net",
				Title:           "Mulai Ulang Jaringan",
				Description:     "Terapkan perubahan konfigurasi.",
				CommandTemplate: "sudo systemctl restart networking",
			},
		},
	},
	{
		ID:              "firewall-ufw",
		Category:        "Keamanan",
		Title:           "Firewall (UFW)",
		Description:     "Mengelola firewall sederhana dengan Uncomplicated Firewall.",
		AIPromptContext: "Linux UFW firewall configuration, allow deny ports, enable firewall",
		Steps: []models.CommandStep{
			{
				ID:              "install-ufw",
				Title:           "Instalasi UFW",
				Description:     "Pastikan UFW terpasang.",
				CommandTemplate: "sudo apt install ufw -y",
			},
			{
				ID:              "allow-ssh",
				Title:           "Izinkan SSH",
				Description:     "PENTING: Izinkan port SSH agar tidak terkunci.",
				CommandTemplate: "sudo ufw allow {{PORT}}/tcp",
				HighlightedVars: []string{"{{PORT}}"},
			},
			{
				ID:              "allow-web",
				Title:           "Izinkan Web Server",
				Description:     "Buka port HTTP dan HTTPS.",
				CommandTemplate: "sudo ufw allow 80/tcp\nsudo ufw allow 443/tcp",
			},
			{
				ID:              "enable-ufw",
				Title:           "Aktifkan Firewall",
				Description:     "Menyalakan firewall.",
				CommandTemplate: "sudo ufw enable",
			},
			{
				ID:              "status-ufw",
				Title:           "Cek Status",
				Description:     "Lihat aturan yang aktif.",
				CommandTemplate: "sudo ufw status verbose",
			},
		},
	},
	{
		ID:              "user-management",
		Category:        "Sistem",
		Title:           "Manajemen Pengguna",
		Description:     "Menambah, menghapus, dan mengelola hak akses pengguna.",
		AIPromptContext: "Linux user management, adduser, usermod, sudo privileges",
		Steps: []models.CommandStep{
			{
				ID:              "add-user",
				Title:           "Tambah Pengguna Baru",
				Description:     "Membuat akun pengguna baru dengan direktori home.",
				CommandTemplate: "sudo adduser nama_pengguna_baru",
				HighlightedVars: []string{"nama_pengguna_baru"},
			},
			{
				ID:              "grant-sudo",
				Title:           "Berikan Akses Sudo",
				Description:     "Menambahkan pengguna ke grup sudo.",
				CommandTemplate: "sudo usermod -aG sudo nama_pengguna_baru",
				HighlightedVars: []string{"nama_pengguna_baru"},
			},
			{
				ID:              "delete-user",
				Title:           "Hapus Pengguna",
				Description:     "Menghapus pengguna beserta direktori home-nya.",
				CommandTemplate: "sudo deluser --remove-home nama_pengguna_lama",
				HighlightedVars: []string{"nama_pengguna_lama"},
			},
		},
	},
	{
		ID:              "dns-bind9",
		Category:        "Jaringan",
		Title:           "DNS Server (Bind9)",
		Description:     "Setup server DNS lokal menggunakan Bind9.",
		AIPromptContext: "Bind9 DNS server configuration on Debian, named.conf.local, zone files",
		Steps: []models.CommandStep{
			{
				ID:              "install-bind9",
				Title:           "Instal Bind9",
				Description:     "Pasang paket-paket yang diperlukan.",
				CommandTemplate: "sudo apt update && sudo apt install bind9 bind9utils bind9-doc -y",
			},
			{
				ID:          "config-local",
				Title:       "Konfigurasi Zona Lokal",
				Description: "Edit /etc/bind/named.conf.local untuk menambahkan zona Anda.",
				CommandTemplate: "zone \"{{DOMAIN}}\" {\n" +
					"    type master;\n" +
					"    file \"/etc/bind/db.{{DOMAIN}}\";\n" +
					"};",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
			{
				ID:          "create-zone-file",
				Title:       "Buat File Zona",
				Description: "Buat file database untuk domain Anda.",
				CommandTemplate: "sudo cp /etc/bind/db.local /etc/bind/db.{{DOMAIN}}\n" +
					"sudo nano /etc/bind/db.{{DOMAIN}}",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
		},
	},
	{
		ID:              "web-nginx",
		Category:        "Web Server",
		Title:           "Web Server Nginx",
		Description:     "Konfigurasi web server berkinerja tinggi.",
		AIPromptContext: "Nginx web server setup, server blocks, sites-available",
		Steps: []models.CommandStep{
			{
				ID:              "install-nginx",
				Title:           "Instal Nginx",
				Description:     "Pasang Nginx dari repositori apt.",
				CommandTemplate: "sudo apt install nginx -y",
			},
			{
				ID:              "create-vhost",
				Title:           "Buat Server Block",
				Description:     "Buat konfigurasi untuk domain Anda.",
				CommandTemplate: "sudo nano /etc/nginx/sites-available/{{DOMAIN}}",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
			{
				ID:          "vhost-content",
				Title:       "Isi Server Block",
				Description: "Konfigurasi dasar Nginx.",
				CommandTemplate: "server {\n" +
					"    listen 80;\n" +
					"    listen [::]:80;\n" +
					"    server_name {{DOMAIN}} www.{{DOMAIN}};\n" +
					"    root /var/www/{{DOMAIN}};\n" +
					"    index index.html;\n" +
					"\n" +
					"    location / {\n" +
					"        try_files $uri $uri/ =404;\n" +
					"    }\n" +
					"}",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
			{
				ID:          "enable-site",
				Title:       "Aktifkan Situs",
				Description: "Tautkan konfigurasi ke sites-enabled.",
				CommandTemplate: "sudo ln -s /etc/nginx/sites-available/{{DOMAIN}} /etc/nginx/sites-enabled/\n" +
					"sudo nginx -t\n" +
					"sudo systemctl reload nginx",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
		},
	},
	{
		ID:              "web-apache",
		Category:        "Web Server",
		Title:           "Web Server Apache2",
		Description:     "Server HTTP yang tangguh dan banyak digunakan.",
		AIPromptContext: "Apache2 web server, virtual hosts, a2ensite",
		Steps: []models.CommandStep{
			{
				ID:              "install-apache",
				Title:           "Instal Apache2",
				CommandTemplate: "sudo apt install apache2 -y",
			},
			{
				ID:              "config-apache",
				Title:           "Konfigurasi Virtual Host",
				Description:     "Buat file konfigurasi.",
				CommandTemplate: "sudo nano /etc/apache2/sites-available/{{DOMAIN}}.conf",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
			{
				ID:          "apache-content",
				Title:       "Isi Konfigurasi",
				Description: "VirtualHost Apache standar.",
				CommandTemplate: "<VirtualHost *:80>\n" +
					"    ServerName {{DOMAIN}}\n" +
					"    ServerAlias www.{{DOMAIN}}\n" +
					"    DocumentRoot /var/www/{{DOMAIN}}\n" +
					"    ErrorLog ${APACHE_LOG_DIR}/error.log\n" +
					"    CustomLog ${APACHE_LOG_DIR}/access.log combined\n" +
					"</VirtualHost>",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
			{
				ID:    "enable-apache",
				Title: "Aktifkan Situs",
				CommandTemplate: "sudo a2ensite {{DOMAIN}}.conf\n" +
					"sudo systemctl reload apache2",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
		},
	},
	{
		ID:              "dhcp-isc",
		Category:        "Jaringan",
		Title:           "ISC DHCP Server",
		Description:     "Kelola pemberian IP secara dinamis.",
		AIPromptContext: "ISC DHCP Server, dhcpd.conf, interfacesv4",
		Steps: []models.CommandStep{
			{
				ID:              "install-dhcp",
				Title:           "Instal DHCP Server",
				CommandTemplate: "sudo apt install isc-dhcp-server -y",
			},
			{
				ID:              "config-interface",
				Title:           "Tentukan Antarmuka",
				Description:     "Tentukan antarmuka mana yang didengarkan DHCP.",
				CommandTemplate: "sudo nano /etc/default/isc-dhcp-server",
			},
			{
				ID:              "config-dhcp",
				Title:           "Konfigurasi Subnet",
				Description:     "Edit dhcpd.conf.",
				CommandTemplate: "sudo nano /etc/dhcp/dhcpd.conf",
			},
			{
				ID:          "subnet-content",
				Title:       "Contoh Subnet",
				Description: "Ganti detail subnet sesuai kebutuhan.",
				CommandTemplate: "subnet 192.168.1.0 netmask 255.255.255.0 {\n" +
					"    range 192.168.1.100 192.168.1.200;\n" +
					"    option routers 192.168.1.1;\n" +
					"    option domain-name-servers 8.8.8.8, 8.8.4.4;\n" +
					"    option domain-name \"{{DOMAIN}}\";\n" +
					"}",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
		},
	},
	{
		ID:              "file-permissions",
		Category:        "Sistem",
		Title:           "Izin File & Kepemilikan",
		Description:     "Mengelola hak akses file (chmod) dan kepemilikan (chown).",
		AIPromptContext: "Linux file permissions, chmod, chown, recursive permissions",
		Steps: []models.CommandStep{
			{
				ID:              "chmod-basic",
				Title:           "Ubah Izin (Chmod)",
				Description:     "Memberikan izin baca, tulis, eksekusi (rwx). 755 umum untuk direktori web.",
				CommandTemplate: "sudo chmod 755 /var/www/{{DOMAIN}}",
				HighlightedVars: []string{"/var/www/{{DOMAIN}}"},
			},
			{
				ID:              "chown-basic",
				Title:           "Ubah Pemilik (Chown)",
				Description:     "Mengubah pemilik file ke www-data (untuk web server).",
				CommandTemplate: "sudo chown -R www-data:www-data /var/www/{{DOMAIN}}",
				HighlightedVars: []string{"www-data:www-data"},
			},
			{
				ID:              "make-exec",
				Title:           "Jadikan Eksekusi",
				Description:     "Membuat script bisa dijalankan.",
				CommandTemplate: "chmod +x nama_script.sh",
				HighlightedVars: []string{"nama_script.sh"},
			},
		},
	},
	{
		ID:              "storage-raid",
		Category:        "Penyimpanan",
		Title:           "Konfigurasi RAID",
		Description:     "Kelola software RAID dengan mdadm.",
		AIPromptContext: "Linux mdadm RAID configuration, raid levels, creating arrays",
		Steps: []models.CommandStep{
			{
				ID:              "install-mdadm",
				Title:           "Instal mdadm",
				CommandTemplate: "sudo apt install mdadm -y",
			},
			{
				ID:              "create-raid",
				Title:           "Buat Array RAID 1",
				Description:     "Contoh membuat /dev/md0 dari sdb dan sdc.",
				CommandTemplate: "sudo mdadm --create --verbose /dev/md0 --level=1 --raid-devices=2 /dev/sdb /dev/sdc",
				HighlightedVars: []string{"/dev/md0", "/dev/sdb", "/dev/sdc"},
			},
			{
				ID:              "save-raid",
				Title:           "Simpan Konfigurasi",
				Description:     "Persistenkan array RAID.",
				CommandTemplate: "sudo mdadm --detail --scan | sudo tee -a /etc/mdadm/mdadm.conf",
			},
		},
	},
	{
		ID:              "system-monitoring",
		Category:        "Sistem",
		Title:           "Monitoring & Proses",
		Description:     "Memantau kinerja sistem dan mengelola layanan.",
		AIPromptContext: "Linux process monitoring, htop, systemctl, journalctl",
		Steps: []models.CommandStep{
			{
				ID:              "install-htop",
				Title:           "Instal Htop",
				Description:     "Alat pemantauan interaktif yang lebih baik dari top.",
				CommandTemplate: "sudo apt install htop -y",
			},
			{
				ID:              "check-service",
				Title:           "Cek Status Layanan",
				Description:     "Memeriksa apakah layanan berjalan.",
				CommandTemplate: "sudo systemctl status nama_layanan",
				HighlightedVars: []string{"nama_layanan"},
			},
			{
				ID:              "view-logs",
				Title:           "Lihat Log Sistem",
				Description:     "Melihat log real-time dari systemd.",
				CommandTemplate: "sudo journalctl -u nama_layanan -f",
				HighlightedVars: []string{"nama_layanan"},
			},
		},
	},
	{
		ID:              "security-ssh",
		Category:        "Keamanan",
		Title:           "SSH & OpenSSL",
		Description:     "Akses shell aman dan pembuatan sertifikat.",
		AIPromptContext: "SSH configuration, sshd_config, OpenSSL certificate generation",
		Steps: []models.CommandStep{
			{
				ID:              "ssh-config",
				Title:           "Edit Konfigurasi SSH",
				Description:     "Perketat keamanan SSH.",
				CommandTemplate: "sudo nano /etc/ssh/sshd_config",
			},
			{
				ID:              "generate-keys",
				Title:           "Buat Pasangan Kunci SSH",
				Description:     "Jalankan ini di mesin klien.",
				CommandTemplate: "ssh-keygen -t rsa -b 4096",
			},
			{
				ID:              "copy-id",
				Title:           "Salin ID ke Server",
				CommandTemplate: "ssh-copy-id -p {{PORT}} {{USERNAME}}@{{IP}}",
				HighlightedVars: []string{"{{USERNAME}}", "{{IP}}", "{{PORT}}"},
			},
			{
				ID:              "openssl-csr",
				Title:           "Buat CSR",
				Description:     "Membuat Certificate Signing Request.",
				CommandTemplate: "openssl req -new -newkey rsa:2048 -nodes -keyout {{DOMAIN}}.key -out {{DOMAIN}}.csr",
				HighlightedVars: []string{"{{DOMAIN}}"},
			},
		},
	},
	{
		ID:              "mail-stack",
		Category:        "Mail",
		Title:           "Server Email Stack",
		Description:     "Postfix, Dovecot, Roundcube, MariaDB.",
		AIPromptContext: "Linux mail server, Postfix, Dovecot, Roundcube, MariaDB",
		Steps: []models.CommandStep{
			{
				ID:              "install-stack",
				Title:           "Instal Paket",
				Description:     "Pasang komponen inti email.",
				CommandTemplate: "sudo apt install postfix dovecot-core dovecot-imapd mariadb-server -y",
			},
			{
				ID:              "configure-postfix",
				Title:           "Konfigurasi Postfix",
				Description:     "Edit main.cf.",
				CommandTemplate: "sudo nano /etc/postfix/main.cf",
			},
			{
				ID:              "roundcube",
				Title:           "Instal Roundcube",
				Description:     "Antarmuka webmail.",
				CommandTemplate: "sudo apt install roundcube roundcube-mysql -y",
			},
		},
	},
	{
		ID:              "docker-basic",
		Category:        "Kontainer",
		Title:           "Docker Dasar",
		Description:     "Instalasi dan penggunaan dasar Docker.",
		AIPromptContext: "Install docker on linux, docker run command, docker ps",
		Steps: []models.CommandStep{
			{
				ID:          "install-docker",
				Title:       "Instal Docker",
				Description: "Mengunduh dan menjalankan skrip instalasi otomatis.",
				CommandTemplate: "curl -fsSL https://get.docker.com -o get-docker.sh\n" +
					"sudo sh get-docker.sh",
			},
			{
				ID:              "docker-permission",
				Title:           "Izin Pengguna Docker",
				Description:     "Menjalankan docker tanpa sudo (harus logout login kembali).",
				CommandTemplate: "sudo usermod -aG docker {{USERNAME}}",
				HighlightedVars: []string{"{{USERNAME}}"},
			},
			{
				ID:              "run-container",
				Title:           "Jalankan Kontainer Test",
				Description:     "Coba jalankan nginx.",
				CommandTemplate: "docker run -d -p 8080:80 --name webserver nginx",
			},
		},
	},
	{
		ID:              "cron-jobs",
		Category:        "Otomatisasi",
		Title:           "Penjadwalan (Cron)",
		Description:     "Otomatisasi tugas berulang dengan crontab.",
		AIPromptContext: "Linux cron jobs, crontab syntax, scheduling tasks",
		Steps: []models.CommandStep{
			{
				ID:              "edit-cron",
				Title:           "Edit Crontab",
				Description:     "Membuka editor untuk user saat ini.",
				CommandTemplate: "crontab -e",
			},
			{
				ID:              "list-cron",
				Title:           "Lihat Daftar Tugas",
				Description:     "Melihat tugas yang sudah dijadwalkan.",
				CommandTemplate: "crontab -l",
			},
			{
				ID:              "cron-example",
				Title:           "Contoh Syntax",
				Description:     "Jalankan script backup setiap jam 3 pagi.",
				CommandTemplate: "0 3 * * * /home/{{USERNAME}}/scripts/backup.sh",
				HighlightedVars: []string{"/home/{{USERNAME}}/scripts/backup.sh"},
			},
		},
	},
	{
		ID:              "vpn",
		Category:        "Keamanan",
		Title:           "Server VPN",
		Description:     "Setup OpenVPN atau Wireguard.",
		AIPromptContext: "VPN server Linux, OpenVPN, Wireguard",
		Steps: []models.CommandStep{
			{
				ID:              "install-openvpn",
				Title:           "Instal OpenVPN",
				CommandTemplate: "sudo apt install openvpn easy-rsa -y",
			},
			{
				ID:              "wg-install",
				Title:           "Instal Wireguard (Alternatif)",
				Description:     "Protokol VPN yang lebih baru dan cepat.",
				CommandTemplate: "sudo apt install wireguard -y",
			},
		},
	},
}
