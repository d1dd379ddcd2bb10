package parser

import "sync"

// 本文件集中存放所有启发式词表。
// 数据驱动：调整分类口径只改表，不碰控制流。

// jobTitleWords 职位词汇——出现在候选姓名里则强烈说明那不是人名
var jobTitleWords = map[string]bool{
	"senior": true, "junior": true, "lead": true, "software": true, "engineer": true,
	"developer": true, "manager": true, "director": true, "analyst": true,
	"specialist": true, "consultant": true, "administrator": true, "coordinator": true,
	"assistant": true, "associate": true, "executive": true, "officer": true,
	"president": true, "head": true, "chief": true, "test": true, "quality": true,
	"assurance": true, "designer": true, "architect": true, "technician": true,
	"support": true, "professional": true, "experience": true, "intern": true,
	"trainee": true, "dev": true, "qa": true, "sdet": true,
}

// firstLineStopTokens 首行姓名累积在这些词上立即停止（职位/技术/学位缩写）
var firstLineStopTokens = map[string]bool{
	"SAP": true, "S/4HANA": true, "HANA": true, "ABAP": true, "SD": true, "MM": true,
	"PP": true, "FICO": true, "CONSULTANT": true, "ENGINEER": true, "DEVELOPER": true,
	"MANAGER": true, "ARCHITECT": true, "LEAD": true, "SR": true, "JR": true,
	"SENIOR": true, "JUNIOR": true, "ADMIN": true, "ADMINISTRATOR": true,
}

// nameSectionHeaders 姓名提取时视为章节边界的标题（小写、去冒号后比对）
var nameSectionHeaders = map[string]bool{
	"profile": true, "summary": true, "objective": true, "about me": true,
	"professional summary": true, "profile summary": true,
	"skills": true, "technical skills": true, "key skills": true,
	"competencies": true, "expertise": true,
	"experience": true, "professional experience": true, "work experience": true,
	"employment history": true,
	"projects": true, "achievements": true, "certifications": true,
	"education": true, "references": true,
	"personal data": true, "personal details": true,
	// 这些也当标题处理，让前言更早截断
	"resume": true, "curriculum vitae": true, "biodata": true, "bio-data": true,
}

// nameSkipPhrases 绝不能当姓名的短语（同时检查去空格变体，OCR会把词粘连）
var nameSkipPhrases = map[string]bool{
	"resume": true, "curriculum vitae": true, "curriculumvitae": true,
	"cv": true, "bio-data": true, "biodata": true,
}

// skillJunkKeywords 技能提取的噪声词表：角色词、软技能、地名、语言名、
// 通用简历词汇——都不是技术技能
var skillJunkKeywords = map[string]bool{
	"skills": true, "tools": true, "technologies": true, "services": true,
	"languages": true, "systems": true, "expertise": true,
	"responsibilities": true, "projects": true, "summary": true, "roles": true,
	"role": true, "team": true, "teams": true, "functional": true,
	"applications": true, "application": true, "platforms": true, "frameworks": true,
	"experience": true, "methodologies": true,
	"used": true, "use": true, "using": true, "proficient": true, "knowledge": true,
	"worked": true, "responsible": true, "designing": true, "developing": true,
	"testing": true, "managing": true, "created": true, "performed": true,
	"maintaining": true, "executing": true, "engineer": true, "engineered": true,
	"helped": true, "understanding": true, "done": true, "skills.": true,
	"communication": true, "problem": true, "teamwork": true, "collaboration": true,
	"leadership": true, "interpersonal": true, "thinking": true, "adaptability": true,
	"attention": true, "critical": true, "self": true, "fast": true, "quick": true,
	"learning": true,
	"and": true, "between": true, "to": true, "from": true, "till": true,
	"since": true, "before": true, "after": true, "year": true, "years": true,
	"etc": true, "etc.": true, "version": true, "control": true, "expert": true,
	"company": true, "client": true, "project": true, "organization": true,
	"details": true, "working": true, "environment": true, "task": true,
	"responsibility": true, "objective": true, "goal": true,
	// 地名
	"pune": true, "mumbai": true, "delhi": true, "bangalore": true,
	"hyderabad": true, "chennai": true, "kolkata": true, "india": true,
	"maharashtra": true, "karnataka": true, "gujarat": true, "rajasthan": true,
	"tamil nadu": true, "west bengal": true,
	// 职位
	"lecturer": true, "professor": true, "manager": true, "developer": true,
	"analyst": true, "consultant": true, "coordinator": true, "specialist": true,
	"executive": true, "officer": true, "director": true, "lead": true,
	"senior": true, "junior": true,
	// 其他常见非技能词
	"bank": true, "coordination": true, "organizational": true,
	"confidently": true, "typing": true, "wpm": true,
	"english": true, "hindi": true, "marathi": true, "tamil": true,
	"telugu": true, "gujarati": true, "bengali": true,
}

// techTerms 技术词汇表——命中的词整体大写输出，也用于区分人名和技术名
var techTerms = map[string]bool{
	"aws": true, "azure": true, "gcp": true, "docker": true, "kubernetes": true,
	"helm": true, "terraform": true, "ansible": true, "jenkins": true, "git": true,
	"gitlab": true,
	"python": true, "java": true, "javascript": true, "typescript": true,
	"node.js": true, "go": true, "golang": true, "ruby": true, "php": true,
	"c": true, "c++": true, "c#": true,
	"react": true, "angular": true, "vue": true, "next.js": true, "nuxt": true,
	"redux": true, "html": true, "css": true, "sass": true, "less": true,
	"bootstrap": true,
	"sql": true, "mysql": true, "postgresql": true, "postgres": true,
	"oracle": true, "mongodb": true, "hive": true, "spark": true, "hadoop": true,
	"pyspark": true,
	"selenium": true, "pytest": true, "junit": true, "testng": true,
	"cypress": true, "playwright": true, "jmeter": true,
	"rest": true, "rest api": true, "graphql": true, "soap": true,
	"microservices": true, "ci/cd": true, "api": true,
	"pandas": true, "numpy": true, "scikit-learn": true, "sklearn": true,
	"tensorflow": true, "pytorch": true, "nlp": true, "eda": true,
	"linux": true, "windows": true, "macos": true, "bash": true, "shell": true,
	"powershell": true, "jira": true, "confluence": true,
	"sap": true, "abap": true, "hana": true, "s/4hana": true, "fico": true,
	"mm": true, "sd": true, "pp": true, "tableau": true, "power bi": true,
	"spring": true, "hibernate": true, "maven": true, "gradle": true,
	"mockito": true, "kafka": true, "redis": true,
	"elasticsearch": true, "kibana": true, "logstash": true, "grafana": true,
	"prometheus": true, "splunk": true,
}

// forceUpperSkills 固定以全大写输出的缩写
var forceUpperSkills = map[string]bool{
	"SQL": true, "HTML": true, "CSS": true, "AWS": true, "GCP": true,
	"EDA": true, "CNN": true, "RNN": true, "QA": true, "REST": true,
	"CI/CD": true, "API": true, "SAP": true, "ABAP": true,
}

// upperInPhrase 多词技能里保持大写的子词
var upperInPhrase = map[string]bool{
	"ci/cd": true, "api": true, "sql": true,
}

// companySuffixWords 公司后缀词——含有它们的词块是公司名不是技能
var companySuffixWords = map[string]bool{
	"technologies": true, "solutions": true, "labs": true, "pvt": true,
	"ltd": true, "inc": true, "llc": true, "limited": true,
	"corporation": true, "corp": true,
}

// verbClueWords 动词开头的词块是职责描述不是技能
var verbClueWords = map[string]bool{
	"implemented": true, "designed": true, "developed": true, "built": true,
	"created": true, "managed": true, "led": true, "leading": true,
	"owning": true, "driving": true, "improved": true, "optimized": true,
	"maintained": true, "executed": true,
}

// locationGazetteer 位置校验用的小型地名辞典（常见印度城市/邦）
var locationGazetteer = map[string]bool{
	"mumbai": true, "delhi": true, "bangalore": true, "hyderabad": true,
	"chennai": true, "kolkata": true, "pune": true, "ahmedabad": true,
	"surat": true, "jaipur": true, "lucknow": true, "kanpur": true,
	"nagpur": true, "indore": true,
	"maharashtra": true, "karnataka": true, "tamil nadu": true, "gujarat": true,
	"rajasthan": true, "uttar pradesh": true, "west bengal": true,
	"telangana": true, "andhra pradesh": true, "kerala": true,
	"madhya pradesh": true,
}

var (
	stopWordsOnce sync.Once
	stopWords     map[string]bool
)

// stopWordSet 英文停用词表，进程级一次性初始化，之后只读
func stopWordSet() map[string]bool {
	stopWordsOnce.Do(func() {
		words := []string{
			"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
			"you", "you're", "you've", "you'll", "you'd", "your", "yours",
			"yourself", "yourselves", "he", "him", "his", "himself", "she",
			"she's", "her", "hers", "herself", "it", "it's", "its", "itself",
			"they", "them", "their", "theirs", "themselves", "what", "which",
			"who", "whom", "this", "that", "that'll", "these", "those", "am",
			"is", "are", "was", "were", "be", "been", "being", "have", "has",
			"had", "having", "do", "does", "did", "doing", "a", "an", "the",
			"and", "but", "if", "or", "because", "as", "until", "while", "of",
			"at", "by", "for", "with", "about", "against", "between", "into",
			"through", "during", "before", "after", "above", "below", "up",
			"down", "in", "out", "on", "off", "over", "under", "again",
			"further", "then", "once", "here", "there", "when", "where", "why",
			"how", "all", "any", "both", "each", "few", "more", "most",
			"other", "some", "such", "no", "nor", "not", "only", "own",
			"same", "so", "than", "too", "very", "s", "t", "can", "will",
			"just", "don", "don't", "should", "should've", "now", "d", "ll",
			"m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
			"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
			"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't",
			"ma", "mightn", "mightn't", "mustn", "mustn't", "needn",
			"needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn",
			"wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
		}
		stopWords = make(map[string]bool, len(words))
		for _, w := range words {
			stopWords[w] = true
		}
	})
	return stopWords
}
