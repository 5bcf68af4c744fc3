package bootstrap

import "github.com/TheODDYSEY/sme-secuaware/internal/domain"

func starterThreats() []domain.ThreatAlert {
	return []domain.ThreatAlert{
		{
			Title:              "Phishing Campaigns Targeting Kenyan SMEs",
			Description:        "Increased phishing attacks using fake M-Pesa and banking notifications to steal credentials. Attackers are impersonating trusted financial institutions.",
			Severity:           domain.SeverityHigh,
			Category:           "phishing",
			AffectedIndustries: []string{"retail", "services", "all"},
			Recommendations: []string{
				"Verify sender authenticity before clicking links",
				"Never provide credentials via email or SMS",
				"Report suspicious messages to your bank",
				"Enable two-factor authentication on all accounts",
			},
			IsActive: true,
			Source:   domain.DefaultThreatSource,
		},
		{
			Title:              "Ransomware Affecting Small Businesses",
			Description:        "New ransomware variant specifically targeting small business networks with weak security. Attackers are demanding payments in cryptocurrency.",
			Severity:           domain.SeverityCritical,
			Category:           "ransomware",
			AffectedIndustries: []string{"all"},
			Recommendations: []string{
				"Implement regular data backups",
				"Keep all software updated",
				"Train employees on email security",
				"Use endpoint protection software",
			},
			IsActive: true,
			Source:   domain.DefaultThreatSource,
		},
		{
			Title:              "WhatsApp Business Scams",
			Description:        "Fraudsters are creating fake WhatsApp Business profiles to deceive customers and steal payment information.",
			Severity:           domain.SeverityMedium,
			Category:           "social-engineering",
			AffectedIndustries: []string{"retail", "services"},
			Recommendations: []string{
				"Verify WhatsApp Business profiles",
				"Use official verification badges",
				"Educate customers about verification",
				"Monitor for impersonation attempts",
			},
			IsActive: true,
			Source:   domain.DefaultThreatSource,
		},
		{
			Title:              "Malware in Pirated Software",
			Description:        "Malicious software hidden in cracked business applications is compromising SME systems and stealing sensitive data.",
			Severity:           domain.SeverityHigh,
			Category:           "malware",
			AffectedIndustries: []string{"all"},
			Recommendations: []string{
				"Use only licensed software",
				"Install antivirus protection",
				"Regular system scans",
				"Employee training on safe downloads",
			},
			IsActive: true,
			Source:   domain.DefaultThreatSource,
		},
	}
}

func starterArticles() []domain.EducationArticle {
	return []domain.EducationArticle{
		{
			Title: "Cybersecurity Basics for Small Business Owners",
			Content: `Cybersecurity is no longer just a concern for large corporations. Small and Medium Enterprises (SMEs) in Kenya are increasingly becoming targets for cybercriminals. This guide will help you understand the fundamental concepts of cybersecurity and why it's crucial for your business.

**Why SMEs Are Targeted**
- Weaker security measures compared to large companies
- Valuable customer data and financial information
- Often serve as entry points to larger business networks
- Limited cybersecurity awareness and training

**Basic Security Principles**
1. **Confidentiality**: Ensuring that sensitive information is only accessible to authorized individuals
2. **Integrity**: Maintaining the accuracy and completeness of data
3. **Availability**: Ensuring systems and data are accessible when needed

**Common Threats to SMEs**
- Phishing emails and social engineering attacks
- Malware and ransomware
- Weak passwords and authentication
- Unsecured networks and devices
- Data breaches and theft

**Getting Started with Security**
Start by conducting a basic security assessment of your business. Identify what data you need to protect, where it's stored, and who has access to it. This foundation will help you implement appropriate security measures.

Remember: Cybersecurity is an ongoing process, not a one-time setup. Regular updates, training, and vigilance are key to maintaining a secure business environment.`,
			Summary:           "Essential cybersecurity knowledge every small business owner should understand to protect their company from cyber threats.",
			Category:          "basics",
			Difficulty:        domain.DifficultyBeginner,
			EstimatedReadTime: 8,
			Tags:              []string{"fundamentals", "business-basics", "sme-security", "introduction"},
			IsPublished:       true,
			Author:            domain.DefaultArticleAuthor,
		},
		{
			Title: "Recognizing and Preventing Phishing Attacks",
			Content: `Phishing attacks are one of the most common and effective methods used by cybercriminals to target SMEs in Kenya. These attacks trick employees into revealing sensitive information or installing malicious software.

**What is Phishing?**
Phishing is a form of social engineering where attackers impersonate trusted entities to steal sensitive information such as usernames, passwords, and financial details.

**Common Phishing Methods in Kenya**
1. **Email Phishing**: Fake emails from banks, M-Pesa, or government agencies
2. **SMS Phishing (Smishing)**: Fraudulent text messages requesting personal information
3. **Voice Phishing (Vishing)**: Phone calls impersonating legitimate organizations
4. **WhatsApp Phishing**: Fake business profiles and suspicious links

**Red Flags to Watch For**
- Urgent requests for personal or financial information
- Suspicious email addresses or phone numbers
- Poor grammar and spelling mistakes
- Unexpected attachments or links
- Requests to verify account information

**Protection Strategies**
1. **Employee Training**: Regular awareness sessions about phishing tactics
2. **Verification Procedures**: Always verify requests through official channels
3. **Technical Measures**: Email filtering and anti-phishing software
4. **Incident Response**: Clear procedures for reporting suspicious messages

**What to Do If Targeted**
- Do not click links or download attachments
- Verify the sender through official contact information
- Report the incident to relevant authorities
- Monitor accounts for suspicious activity

**Real-World Example**
A Nairobi retail business received an email claiming to be from KRA requesting urgent tax document updates. The email contained a link to a fake website designed to steal login credentials. By following verification procedures, the business identified it as a phishing attempt and reported it to authorities.`,
			Summary:           "Learn to identify and protect your business from phishing attacks, the most common cybersecurity threat facing Kenyan SMEs.",
			Category:          "phishing",
			Difficulty:        domain.DifficultyBeginner,
			EstimatedReadTime: 12,
			Tags:              []string{"phishing", "email-security", "social-engineering", "awareness"},
			IsPublished:       true,
			Author:            domain.DefaultArticleAuthor,
		},
		{
			Title: "Creating Strong Password Policies for Your Business",
			Content: `Password security is the first line of defense for your business systems and data. Weak passwords are one of the leading causes of security breaches in SMEs.

**The Current Password Problem**
Many businesses still use weak, easily guessable passwords or reuse the same password across multiple systems. This creates significant security vulnerabilities that cybercriminals can easily exploit.

**Elements of a Strong Password Policy**

**1. Password Complexity Requirements**
- Minimum 12 characters (longer is better)
- Combination of uppercase and lowercase letters
- Include numbers and special characters
- Avoid common words and patterns

**2. Password Uniqueness**
- Different passwords for different systems
- No reuse of previous passwords
- Separate personal and business passwords

**3. Regular Updates**
- Change passwords every 90 days for sensitive accounts
- Immediate change if compromise is suspected
- Update default passwords on all systems

**4. Multi-Factor Authentication (MFA)**
- Enable MFA on all business accounts
- Use authenticator apps instead of SMS when possible
- Backup authentication methods

**Implementing Password Managers**
Password managers are essential tools for SMEs:
- Generate strong, unique passwords
- Store passwords securely
- Enable easy password sharing for teams
- Provide security reporting

**Employee Training and Enforcement**
- Regular password security training
- Clear consequences for policy violations
- Regular password audits and assessments
- Incentives for following best practices

**Implementation Timeline**
Week 1: Assess current password practices
Week 2: Choose and deploy password manager
Week 3: Train employees on new policy
Week 4: Implement MFA on critical systems
Month 2: Regular compliance monitoring`,
			Summary:           "Comprehensive guide to implementing strong password policies that protect your business from unauthorized access.",
			Category:          "passwords",
			Difficulty:        domain.DifficultyIntermediate,
			EstimatedReadTime: 15,
			Tags:              []string{"passwords", "authentication", "mfa", "policy", "access-control"},
			IsPublished:       true,
			Author:            domain.DefaultArticleAuthor,
		},
		{
			Title: "Understanding and Preventing Malware",
			Content: `Malware (malicious software) represents one of the most serious threats to SMEs in Kenya. Understanding different types of malware and how to prevent infections is crucial for business protection.

**Types of Malware Affecting SMEs**

**1. Viruses**
- Attach to legitimate files and spread
- Can corrupt or delete important data
- Often spread through email attachments

**2. Ransomware**
- Encrypts business files and demands payment
- Particularly devastating for SMEs
- Growing threat in Kenya

**3. Spyware**
- Secretly monitors and steals information
- Can capture passwords and financial data
- Often undetected for long periods

**4. Trojans**
- Disguised as legitimate software
- Create backdoors for attackers
- Common in pirated software

**Prevention Strategies**

**1. Endpoint Protection**
- Install reputable antivirus software
- Keep definitions updated automatically
- Regular full system scans

**2. Software Updates**
- Enable automatic updates for operating systems
- Keep all software patched and current
- Remove unused applications

**3. Safe Browsing Practices**
- Avoid suspicious websites
- Be cautious with downloads
- Use reputable web browsers with security features

**4. Email Security**
- Don't open suspicious attachments
- Verify sender before clicking links
- Use email filtering solutions

**5. Network Security**
- Secure WiFi networks with WPA3
- Use firewalls for network protection
- Segment business and guest networks

**Response to Malware Infections**

**Immediate Actions:**
1. Disconnect infected device from network
2. Do not restart the infected computer
3. Contact IT support immediately
4. Begin recovery procedures

**Backup Strategy**
Regular backups are your best defense against malware:
- Daily automated backups
- Test restoration procedures regularly
- Store backups offline or in cloud
- Maintain multiple backup copies

**Special Considerations for Kenyan SMEs**
- Use of pirated software increases malware risk
- Mobile device security for business use
- Public WiFi security when traveling
- Banking malware targeting M-Pesa and mobile banking`,
			Summary:           "Complete guide to understanding, preventing, and responding to malware threats that target small businesses.",
			Category:          "malware",
			Difficulty:        domain.DifficultyIntermediate,
			EstimatedReadTime: 18,
			Tags:              []string{"malware", "prevention", "antivirus", "ransomware", "endpoint-security"},
			IsPublished:       true,
			Author:            domain.DefaultArticleAuthor,
		},
		{
			Title: "Essential Data Backup Strategies for SMEs",
			Content: `Data loss can be devastating for small businesses. Whether caused by hardware failure, cyber attacks, or natural disasters, losing critical business data can result in significant downtime and financial losses.

**Why Backup is Critical for SMEs**
- 60% of companies that lose data shut down within 6 months
- Ransomware attacks increasingly target backup systems
- Business continuity depends on data availability

**The 3-2-1 Backup Rule**
- **3** copies of important data
- **2** different storage media types
- **1** offsite backup location

**Backup Methods for SMEs**

**1. Local Backups**
- External hard drives
- Network Attached Storage (NAS)
- Quick restoration times
- Complete control over data

**2. Cloud Backups**
- Automatic and scheduled
- Offsite protection
- Scalable storage
- Professional maintenance

**3. Hybrid Approach**
- Combines local and cloud benefits
- Fastest recovery for recent data
- Long-term offsite protection

**Backup Best Practices**

**1. Regular Testing**
- Monthly restoration tests
- Verify data integrity
- Document recovery procedures
- Train staff on recovery process

**2. Security Measures**
- Encrypt backup data
- Secure backup locations
- Access controls and monitoring
- Regular security audits

**Creating Your Backup Plan**

**Step 1: Assessment**
- Identify critical data and systems
- Determine recovery requirements
- Assess current backup capabilities

**Step 2: Strategy Development**
- Choose appropriate backup methods
- Define backup schedules
- Establish retention policies

**Step 3: Implementation**
- Deploy backup solutions
- Configure automated schedules
- Test initial backups

**Step 4: Ongoing Management**
- Regular monitoring and testing
- Staff training and updates
- Plan reviews and improvements

**Disaster Recovery Planning**
Beyond backup, consider:
- Alternative work locations
- Communication procedures
- Critical system priorities
- Vendor and supplier contacts
- Insurance and financial considerations`,
			Summary:           "Comprehensive guide to implementing effective data backup strategies that protect your business from data loss.",
			Category:          "backup",
			Difficulty:        domain.DifficultyIntermediate,
			EstimatedReadTime: 20,
			Tags:              []string{"backup", "disaster-recovery", "data-protection", "business-continuity"},
			IsPublished:       true,
			Author:            domain.DefaultArticleAuthor,
		},
		{
			Title: "Incident Response Planning for SMEs",
			Content: `When a cybersecurity incident occurs, having a well-prepared response plan can mean the difference between a minor disruption and a business-threatening disaster.

**What is an Incident Response Plan?**
A documented set of procedures that guides your organization's response to cybersecurity incidents, minimizing damage and recovery time.

**Why SMEs Need Incident Response Plans**
- Faster containment of security breaches
- Reduced business disruption and costs
- Better compliance with regulations
- Improved customer trust and reputation
- Legal protection and documentation

**The Incident Response Process**

**Phase 1: Preparation**
- Develop response procedures
- Assemble incident response team
- Prepare tools and communication channels
- Conduct regular training and drills

**Phase 2: Detection and Analysis**
- Monitor systems for incidents
- Validate and classify incidents
- Assess scope and impact
- Document initial findings

**Phase 3: Containment**
- Isolate affected systems
- Prevent further damage
- Preserve evidence
- Implement temporary fixes

**Phase 4: Eradication**
- Remove malware or threats
- Close security vulnerabilities
- Update security measures
- Verify system cleanliness

**Phase 5: Recovery**
- Restore systems and services
- Monitor for recurring issues
- Implement additional safeguards
- Return to normal operations

**Phase 6: Lessons Learned**
- Document the incident
- Analyze response effectiveness
- Update procedures and training
- Improve security measures

**Building Your Incident Response Team**

**Core Team Members:**
- **Incident Commander**: Overall response coordination
- **IT Security**: Technical analysis and remediation
- **IT Operations**: System restoration and maintenance
- **Legal**: Compliance and legal implications
- **Communications**: Internal and external messaging
- **Management**: Decision-making authority

**Communication During Incidents**

**Internal Communication:**
- Immediate team notification
- Executive briefings
- Employee updates
- Stakeholder notifications

**External Communication:**
- Customer notifications
- Vendor communications
- Regulatory reporting
- Media statements (if required)

**Measuring Response Effectiveness**
- Mean time to detection (MTTD)
- Mean time to containment (MTTC)
- Mean time to recovery (MTTR)
- Business impact assessment
- Customer satisfaction metrics`,
			Summary:           "Step-by-step guide to creating and implementing an effective incident response plan for your SME.",
			Category:          "incident-response",
			Difficulty:        domain.DifficultyAdvanced,
			EstimatedReadTime: 25,
			Tags:              []string{"incident-response", "emergency-planning", "crisis-management", "security-procedures"},
			IsPublished:       true,
			Author:            domain.DefaultArticleAuthor,
		},
	}
}
