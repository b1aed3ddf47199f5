package migrations

// Table is one idempotent creation statement of the bootstrap list.
type Table struct {
	Name string
	SQL  string
}

// Schema is executed in order at startup; parents precede their children.
var Schema = []Table{
	{
		Name: "super_admin",
		SQL: `CREATE TABLE IF NOT EXISTS super_admin (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			image VARCHAR(255) NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "departments",
		SQL: `CREATE TABLE IF NOT EXISTS departments (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "teachers",
		SQL: `CREATE TABLE IF NOT EXISTS teachers (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			image VARCHAR(255) NULL,
			department_id INT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (department_id) REFERENCES departments(id) ON DELETE SET NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "students",
		SQL: `CREATE TABLE IF NOT EXISTS students (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			image VARCHAR(255) NULL,
			department_id INT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (department_id) REFERENCES departments(id) ON DELETE SET NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "courses",
		SQL: `CREATE TABLE IF NOT EXISTS courses (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			tag VARCHAR(100) NOT NULL DEFAULT '',
			category_id INT NULL,
			department_id INT NULL,
			teacher_id INT NULL,
			benefit_one TEXT,
			benefit_two TEXT,
			prerequisite_one TEXT,
			prerequisite_two TEXT,
			image VARCHAR(255) NULL,
			description TEXT,
			year VARCHAR(20) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL,
			FOREIGN KEY (department_id) REFERENCES departments(id) ON DELETE SET NULL,
			FOREIGN KEY (teacher_id) REFERENCES teachers(id) ON DELETE SET NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "course_links",
		SQL: `CREATE TABLE IF NOT EXISTS course_links (
			id INT AUTO_INCREMENT PRIMARY KEY,
			course_id INT NOT NULL,
			link_name VARCHAR(255) NOT NULL,
			link_url VARCHAR(1024) NOT NULL,
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "comments",
		SQL: `CREATE TABLE IF NOT EXISTS comments (
			id INT AUTO_INCREMENT PRIMARY KEY,
			course_id INT NOT NULL,
			student_id INT NOT NULL,
			comment TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE,
			FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "questions",
		SQL: `CREATE TABLE IF NOT EXISTS questions (
			id INT AUTO_INCREMENT PRIMARY KEY,
			course_id INT NOT NULL,
			student_id INT NOT NULL,
			question TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE,
			FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "answers",
		SQL: `CREATE TABLE IF NOT EXISTS answers (
			id INT AUTO_INCREMENT PRIMARY KEY,
			question_id INT NOT NULL,
			teacher_id INT NOT NULL,
			responder_role VARCHAR(16) NOT NULL DEFAULT 'teacher',
			answer TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "ratings",
		SQL: `CREATE TABLE IF NOT EXISTS ratings (
			id INT AUTO_INCREMENT PRIMARY KEY,
			course_id INT NOT NULL,
			student_id INT NOT NULL,
			rating TINYINT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT chk_rating_range CHECK (rating BETWEEN 1 AND 5),
			UNIQUE KEY uq_rating_course_student (course_id, student_id),
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE,
			FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		Name: "exams",
		SQL: `CREATE TABLE IF NOT EXISTS exams (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			image VARCHAR(255) NULL,
			category_id INT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}
